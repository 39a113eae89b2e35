package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, expected '#'", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1,0) = %q, expected space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10,0) = %q, expected space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(8, 3)

	s.SetColored(2, 1, 'g', ColorBrightRed)
	cell := s.GetCell(2, 1)
	if cell.Rune != 'g' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(2,1) = %+v, expected rune 'g' bright red", cell)
	}

	// Default Set uses the default color
	s.Set(3, 1, '.')
	if c := s.GetCell(3, 1).Color; c != ColorDefault {
		t.Errorf("Set should use ColorDefault, got %v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if row := s.Row(1); row != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", row, "  hello   ")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if row := s.Row(0); row != "        ab" {
		t.Errorf("Row(0) = %q, expected %q", row, "        ab")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 3)
	if got := s.Get(1, 1); got != 'A' {
		t.Errorf("content at (1,1) lost after shrink, got %q", got)
	}
	if got := s.Get(5, 3); got != ' ' {
		t.Errorf("out-of-bounds read after shrink = %q, expected space", got)
	}

	s.Resize(8, 5)
	if got := s.Get(1, 1); got != 'A' {
		t.Errorf("content at (1,1) lost after grow, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if n := strings.Count(s.String(), "\n"); n != 1 {
		t.Errorf("String() has %d newlines, expected 1", n)
	}
}

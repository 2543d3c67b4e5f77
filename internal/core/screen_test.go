package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(1, 2, '█', ColorCyan)

	got := s.GetCell(1, 2)
	if got.Rune != '█' || got.Color != ColorCyan {
		t.Errorf("GetCell(1, 2) = %+v, expected cyan block", got)
	}

	s.Set(1, 2, 'x')
	if got := s.GetCell(1, 2); got.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", got.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorRed)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("after Clear, (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); got != "  Hello             " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "World")
	if got := s.Row(2); !strings.HasSuffix(got, "Wor") {
		t.Errorf("clipped text row = %q", got)
	}
}

func TestScreenDrawTextColorMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColor(0, 0, "█▓x", ColorGreen)

	if s.Get(2, 0) != 'x' {
		t.Errorf("Get(2, 0) = %q, expected 'x'", s.Get(2, 0))
	}
	if s.GetCell(1, 0).Color != ColorGreen {
		t.Error("expected colored cell")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box corners should carry the box color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(1, 1, 'A', ColorRed)
	s.Set(3, 3, 'B')

	s.Resize(2, 6)

	if s.Width() != 2 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 2x6", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'A' || c.Color != ColorRed {
		t.Errorf("preserved cell = %+v", c)
	}
	if s.Get(0, 5) != ' ' {
		t.Error("new rows should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('.')

	if got := s.String(); got != "...\n..." {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(7); got != "   " {
		t.Errorf("Row(7) = %q, expected blanks", got)
	}
}

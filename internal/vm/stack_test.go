package vm

import "testing"

func TestStackPushPopU8(t *testing.T) {
	s := NewStack(4, 64)
	if !s.PushU8(42) {
		t.Fatal("PushU8 failed unexpectedly")
	}
	v, ok := s.PopU8()
	if !ok || v != 42 {
		t.Fatalf("PopU8 = (%d, %v), want (42, true)", v, ok)
	}
}

func TestStackPushPopU16BigEndian(t *testing.T) {
	s := NewStack(4, 64)
	if !s.PushU16(0x1234) {
		t.Fatal("PushU16 failed unexpectedly")
	}
	tail := s.Tail(2)
	if tail[0] != 0x12 || tail[1] != 0x34 {
		t.Fatalf("raw bytes = %v, want [0x12 0x34]", tail)
	}
	v, ok := s.PopU16()
	if !ok || v != 0x1234 {
		t.Fatalf("PopU16 = (%x, %v), want (1234, true)", v, ok)
	}
}

func TestStackPopUnderflow(t *testing.T) {
	s := NewStack(4, 64)
	if _, ok := s.PopU8(); ok {
		t.Fatal("PopU8 on an empty stack should fail")
	}
}

func TestStackGrowsWithinMax(t *testing.T) {
	s := NewStack(1, 4)
	for i := 0; i < 4; i++ {
		if !s.PushU8(byte(i)) {
			t.Fatalf("push %d failed, expected room up to max", i)
		}
	}
	if s.PushU8(99) {
		t.Fatal("push beyond max should fail")
	}
}

func TestStackTailCapsAtLength(t *testing.T) {
	s := NewStack(4, 64)
	s.PushU8(1)
	s.PushU8(2)
	tail := s.Tail(10)
	if len(tail) != 2 {
		t.Fatalf("Tail(10) on a 2-byte stack returned %d bytes, want 2", len(tail))
	}
}

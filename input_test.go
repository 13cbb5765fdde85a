package wary

import (
	"bytes"
	"testing"
)

func TestNew(t *testing.T) {
	i := New([]byte("hello"))

	t.Run("length", func(t *testing.T) {
		if got := i.Len(); got != 5 {
			t.Errorf("Len() = %d, want 5", got)
		}
		if i.IsEmpty() {
			t.Error("Expected IsEmpty() to be false")
		}
	})

	t.Run("bound", func(t *testing.T) {
		if got := i.Bound(); got != BoundStart {
			t.Errorf("Bound() = %v, want %v", got, BoundStart)
		}
		if got := i.Bounded().Bound(); got != BoundStartEnd {
			t.Errorf("Bounded().Bound() = %v, want %v", got, BoundStartEnd)
		}
	})

	t.Run("raw", func(t *testing.T) {
		if got := i.Raw(); !bytes.Equal(got, []byte("hello")) {
			t.Errorf("Raw() = %q, want %q", got, "hello")
		}
	})

	t.Run("not a string", func(t *testing.T) {
		if i.IsString() {
			t.Error("Expected IsString() to be false for raw bytes")
		}
	})
}

func TestNewString(t *testing.T) {
	i := NewString("héllo")
	if !i.IsString() {
		t.Error("Expected IsString() to be true")
	}
	if got := i.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}

	t.Run("text is a no-op", func(t *testing.T) {
		s, err := i.Text()
		if err != nil {
			t.Fatalf("Text() failed: %v", err)
		}
		if !s.IsString() {
			t.Error("Expected validated input to stay a string")
		}
	})
}

func TestSplitAt(t *testing.T) {
	i := New([]byte("hello world"))

	t.Run("in range", func(t *testing.T) {
		head, tail, err := i.SplitAt(5)
		if err != nil {
			t.Fatalf("SplitAt(5) failed: %v", err)
		}
		if got := string(head.Raw()); got != "hello" {
			t.Errorf("head = %q, want %q", got, "hello")
		}
		if got := string(tail.Raw()); got != " world" {
			t.Errorf("tail = %q, want %q", got, " world")
		}
		if got := head.Bound(); got != BoundStartEnd {
			t.Errorf("head bound = %v, want %v", got, BoundStartEnd)
		}
		if got := tail.Bound(); got != BoundStart {
			t.Errorf("tail bound = %v, want %v", got, BoundStart)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, _, err := i.SplitAt(100)
		if err == nil {
			t.Fatal("Expected SplitAt(100) to fail")
		}
		k, ok := err.(*LengthShortfall)
		if !ok {
			t.Fatalf("Expected *LengthShortfall, got %T", err)
		}
		if got := k.Min(); got != 100 {
			t.Errorf("Min() = %d, want 100", got)
		}
		if got := k.RetryRequirement().ContinueAfter(); got != 89 {
			t.Errorf("ContinueAfter() = %d, want 89", got)
		}
	})

	t.Run("out of range over bounded input", func(t *testing.T) {
		_, _, err := i.Bounded().SplitAt(100)
		k, ok := err.(*LengthShortfall)
		if !ok {
			t.Fatalf("Expected *LengthShortfall, got %T", err)
		}
		if !k.IsFatal() {
			t.Error("Expected shortfall over bounded input to be fatal")
		}
		if !k.RetryRequirement().IsNone() {
			t.Error("Expected no retry requirement over bounded input")
		}
	})

	t.Run("opt", func(t *testing.T) {
		if _, _, ok := i.SplitAtOpt(100); ok {
			t.Error("Expected SplitAtOpt(100) to report false")
		}
		if _, _, ok := i.SplitAtOpt(-1); ok {
			t.Error("Expected SplitAtOpt(-1) to report false")
		}
		head, _, ok := i.SplitAtOpt(0)
		if !ok {
			t.Fatal("Expected SplitAtOpt(0) to report true")
		}
		if !head.IsEmpty() {
			t.Error("Expected empty head")
		}
	})
}

func TestSplitMax(t *testing.T) {
	i := New([]byte("abc"))

	t.Run("shorter than max", func(t *testing.T) {
		head, tail := i.SplitMax(10)
		if got := string(head.Raw()); got != "abc" {
			t.Errorf("head = %q, want %q", got, "abc")
		}
		if !tail.IsEmpty() {
			t.Error("Expected empty tail")
		}
		if got := head.Bound(); got != BoundStart {
			t.Errorf("head bound = %v, want %v", got, BoundStart)
		}
		if got := tail.Bound(); got != BoundNone {
			t.Errorf("tail bound = %v, want %v", got, BoundNone)
		}
	})

	t.Run("longer than max", func(t *testing.T) {
		head, tail := i.SplitMax(2)
		if got := string(head.Raw()); got != "ab" {
			t.Errorf("head = %q, want %q", got, "ab")
		}
		if got := string(tail.Raw()); got != "c" {
			t.Errorf("tail = %q, want %q", got, "c")
		}
	})
}

func TestSplitWhile(t *testing.T) {
	digit := func(b byte) bool { return b >= '0' && b <= '9' }

	t.Run("rejects mid input", func(t *testing.T) {
		head, tail := New([]byte("123abc")).SplitWhile(digit)
		if got := string(head.Raw()); got != "123" {
			t.Errorf("head = %q, want %q", got, "123")
		}
		if got := string(tail.Raw()); got != "abc" {
			t.Errorf("tail = %q, want %q", got, "abc")
		}
		if got := head.Bound(); got != BoundStartEnd {
			t.Errorf("head bound = %v, want %v", got, BoundStartEnd)
		}
	})

	t.Run("exhausts input", func(t *testing.T) {
		head, tail := New([]byte("123")).SplitWhile(digit)
		if got := string(head.Raw()); got != "123" {
			t.Errorf("head = %q, want %q", got, "123")
		}
		// The scan could have continued: the head's end stays open and
		// the empty tail has no bounds at all.
		if got := head.Bound(); got != BoundStart {
			t.Errorf("head bound = %v, want %v", got, BoundStart)
		}
		if got := tail.Bound(); got != BoundNone {
			t.Errorf("tail bound = %v, want %v", got, BoundNone)
		}
	})
}

func TestSplitPrefix(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		head, tail, err := New([]byte("hello world")).SplitPrefix([]byte("hello"))
		if err != nil {
			t.Fatalf("SplitPrefix failed: %v", err)
		}
		if got := string(head.Raw()); got != "hello" {
			t.Errorf("head = %q, want %q", got, "hello")
		}
		if got := string(tail.Raw()); got != " world" {
			t.Errorf("tail = %q, want %q", got, " world")
		}
	})

	t.Run("mismatch is fatal", func(t *testing.T) {
		_, _, err := New([]byte("help me")).SplitPrefix([]byte("hello"))
		k, ok := err.(*ValueMismatch)
		if !ok {
			t.Fatalf("Expected *ValueMismatch, got %T", err)
		}
		if !k.IsFatal() {
			t.Error("Expected a definite mismatch to be fatal")
		}
		if got := string(k.Found().Raw()); got != "help " {
			t.Errorf("Found() = %q, want %q", got, "help ")
		}
		if got := string(k.Expected().Raw()); got != "hello" {
			t.Errorf("Expected() = %q, want %q", got, "hello")
		}
	})

	t.Run("partial match is retryable", func(t *testing.T) {
		_, _, err := New([]byte("hel")).SplitPrefix([]byte("hello"))
		k, ok := err.(*ValueMismatch)
		if !ok {
			t.Fatalf("Expected *ValueMismatch, got %T", err)
		}
		if k.IsFatal() {
			t.Error("Expected a strict prefix of the expected value to be retryable")
		}
		if got := k.RetryRequirement().ContinueAfter(); got != 2 {
			t.Errorf("ContinueAfter() = %d, want 2", got)
		}
	})

	t.Run("partial match over bounded input is fatal", func(t *testing.T) {
		_, _, err := New([]byte("hel")).Bounded().SplitPrefix([]byte("hello"))
		k, ok := err.(*ValueMismatch)
		if !ok {
			t.Fatalf("Expected *ValueMismatch, got %T", err)
		}
		if !k.IsFatal() {
			t.Error("Expected a mismatch over bounded input to be fatal")
		}
	})
}

func TestText(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := New([]byte("héllo ☃")).Text()
		if err != nil {
			t.Fatalf("Text() failed: %v", err)
		}
		if !s.IsString() {
			t.Error("Expected IsString() to be true after validation")
		}
	})

	t.Run("invalid sequence is fatal", func(t *testing.T) {
		_, err := New([]byte{'h', 0xFF, 'i'}).Text()
		k, ok := err.(*InvalidValue)
		if !ok {
			t.Fatalf("Expected *InvalidValue, got %T", err)
		}
		if !k.IsFatal() {
			t.Error("Expected an invalid sequence to be fatal")
		}
		if got := k.Span().Len(); got != 1 {
			t.Errorf("Span().Len() = %d, want 1", got)
		}
	})

	t.Run("truncated sequence is retryable", func(t *testing.T) {
		// First two bytes of a three byte sequence.
		_, err := New([]byte{0xE2, 0x82}).Text()
		k, ok := err.(*LengthShortfall)
		if !ok {
			t.Fatalf("Expected *LengthShortfall, got %T", err)
		}
		if got := k.Min(); got != 3 {
			t.Errorf("Min() = %d, want 3", got)
		}
		if got := k.RetryRequirement().ContinueAfter(); got != 1 {
			t.Errorf("ContinueAfter() = %d, want 1", got)
		}
	})

	t.Run("truncated lead after valid text", func(t *testing.T) {
		// "Aé " followed by the lead byte of a two byte sequence.
		input := New([]byte{0x41, 0xC3, 0xA9, 0x20, 0xC2})
		_, err := input.Text()
		k, ok := err.(*LengthShortfall)
		if !ok {
			t.Fatalf("Expected *LengthShortfall, got %T", err)
		}
		if got := k.Min(); got != 2 {
			t.Errorf("Min() = %d, want 2", got)
		}
		if got, ok := k.Span().OffsetWithin(input.Span()); !ok || got != 4 {
			t.Errorf("OffsetWithin = (%d, %v), want (4, true)", got, ok)
		}
		if got := k.RetryRequirement().ContinueAfter(); got != 1 {
			t.Errorf("ContinueAfter() = %d, want 1", got)
		}
	})

	t.Run("truncated sequence over bounded input is fatal", func(t *testing.T) {
		_, err := New([]byte{0xE2, 0x82}).Bounded().Text()
		k, ok := err.(*LengthShortfall)
		if !ok {
			t.Fatalf("Expected *LengthShortfall, got %T", err)
		}
		if !k.IsFatal() {
			t.Error("Expected a truncated sequence over bounded input to be fatal")
		}
	})

	t.Run("overlong encoding is fatal", func(t *testing.T) {
		// 0xE0 0x80 0x80 would decode to an overlong U+0000.
		_, err := New([]byte{0xE0, 0x80, 0x80}).Text()
		k, ok := err.(*InvalidValue)
		if !ok {
			t.Fatalf("Expected *InvalidValue, got %T", err)
		}
		if !k.IsFatal() {
			t.Error("Expected an overlong encoding to be fatal")
		}
	})

	t.Run("surrogate is fatal", func(t *testing.T) {
		// 0xED 0xA0 0x80 would decode to the surrogate U+D800.
		_, err := New([]byte{0xED, 0xA0, 0x80}).Text()
		if _, ok := err.(*InvalidValue); !ok {
			t.Fatalf("Expected *InvalidValue, got %T", err)
		}
	})
}

func TestInputString(t *testing.T) {
	t.Run("raw bytes as hex", func(t *testing.T) {
		if got := New([]byte{0xCA, 0xFE}).String(); got != "[ca fe]" {
			t.Errorf("String() = %q, want %q", got, "[ca fe]")
		}
	})

	t.Run("validated text quoted", func(t *testing.T) {
		if got := NewString("hi").String(); got != `"hi"` {
			t.Errorf("String() = %q, want %q", got, `"hi"`)
		}
	})
}

func TestSliceDropsStringFlagOffRuneBoundary(t *testing.T) {
	i := NewString("héllo") // é is two bytes at offsets 1..3

	head, tail, ok := i.SplitAtOpt(2)
	if !ok {
		t.Fatal("Expected SplitAtOpt(2) to report true")
	}
	if head.IsString() {
		t.Error("Expected head cut mid-rune to lose the string flag")
	}
	if tail.IsString() {
		t.Error("Expected tail cut mid-rune to lose the string flag")
	}

	head, tail, ok = i.SplitAtOpt(3)
	if !ok {
		t.Fatal("Expected SplitAtOpt(3) to report true")
	}
	if !head.IsString() || !tail.IsString() {
		t.Error("Expected both halves cut on a rune boundary to keep the string flag")
	}
}

package wary

import (
	"bytes"
	"testing"
)

func TestSpanContainment(t *testing.T) {
	parent := New([]byte("hello world"))
	head, tail, _ := parent.SplitAtOpt(5)

	t.Run("derived views are within the parent", func(t *testing.T) {
		if !head.Span().IsWithin(parent.Span()) {
			t.Error("Expected head span to be within parent span")
		}
		if !tail.Span().IsWithin(parent.Span()) {
			t.Error("Expected tail span to be within parent span")
		}
		if parent.Span().IsWithin(head.Span()) {
			t.Error("Expected parent span not to be within head span")
		}
	})

	t.Run("unrelated buffers are never within one another", func(t *testing.T) {
		other := New([]byte("hello world"))
		if head.Span().IsWithin(other.Span()) {
			t.Error("Expected spans of different buffers not to contain one another")
		}
	})

	t.Run("range of", func(t *testing.T) {
		start, end, ok := tail.Span().RangeOf(parent.Span())
		if !ok {
			t.Fatal("Expected RangeOf to succeed")
		}
		if start != 5 || end != 11 {
			t.Errorf("RangeOf = (%d, %d), want (5, 11)", start, end)
		}
	})

	t.Run("of recovers the bytes", func(t *testing.T) {
		got, ok := tail.Span().Of(parent)
		if !ok {
			t.Fatal("Expected Of to succeed")
		}
		if !bytes.Equal(got, []byte(" world")) {
			t.Errorf("Of() = %q, want %q", got, " world")
		}
	})

	t.Run("of fails across buffers", func(t *testing.T) {
		other := New([]byte("zzz"))
		if _, ok := tail.Span().Of(other); ok {
			t.Error("Expected Of over an unrelated buffer to fail")
		}
	})
}

func TestSpanEdges(t *testing.T) {
	parent := New([]byte("abcd"))
	span := parent.Span()

	t.Run("start span", func(t *testing.T) {
		s := span.StartSpan()
		if !s.IsEmpty() {
			t.Error("Expected StartSpan to be empty")
		}
		if !s.IsStartOf(span) {
			t.Error("Expected StartSpan to be the start of its parent")
		}
		if s.IsEndOf(span) {
			t.Error("Expected StartSpan not to be the end of its parent")
		}
	})

	t.Run("end span", func(t *testing.T) {
		s := parent.endView().Span()
		if !s.IsEndOf(span) {
			t.Error("Expected the end view's span to be the end of its parent")
		}
	})

	t.Run("non empty", func(t *testing.T) {
		if _, ok := span.NonEmpty(); !ok {
			t.Error("Expected NonEmpty to report true for a covering span")
		}
		if _, ok := span.StartSpan().NonEmpty(); ok {
			t.Error("Expected NonEmpty to report false for an empty span")
		}
	})

	t.Run("string", func(t *testing.T) {
		if got := span.String(); got != "(start: 0, len: 4)" {
			t.Errorf("String() = %q, want %q", got, "(start: 0, len: 4)")
		}
	})
}

func TestRetryRequirement(t *testing.T) {
	t.Run("zero and negative mean none", func(t *testing.T) {
		if !NewRetryRequirement(0).IsNone() {
			t.Error("Expected NewRetryRequirement(0) to be none")
		}
		if !NewRetryRequirement(-3).IsNone() {
			t.Error("Expected NewRetryRequirement(-3) to be none")
		}
		if NoRequirement.ContinueAfter() != 0 {
			t.Error("Expected ContinueAfter() = 0 for no requirement")
		}
	})

	t.Run("from had and needed", func(t *testing.T) {
		if got := RetryFromHadNeeded(2, 5).ContinueAfter(); got != 3 {
			t.Errorf("ContinueAfter() = %d, want 3", got)
		}
		if !RetryFromHadNeeded(5, 2).IsNone() {
			t.Error("Expected no requirement when more was had than needed")
		}
	})

	t.Run("met by", func(t *testing.T) {
		r := NewRetryRequirement(3)
		if r.MetBy(2) {
			t.Error("Expected MetBy(2) to be false for a 3 byte requirement")
		}
		if !r.MetBy(3) {
			t.Error("Expected MetBy(3) to be true for a 3 byte requirement")
		}
		if NoRequirement.MetBy(100) {
			t.Error("Expected MetBy to be false for no requirement")
		}
	})

	t.Run("string", func(t *testing.T) {
		if got := NewRetryRequirement(1).String(); got != "1 byte more" {
			t.Errorf("String() = %q, want %q", got, "1 byte more")
		}
		if got := NewRetryRequirement(4).String(); got != "4 bytes more" {
			t.Errorf("String() = %q, want %q", got, "4 bytes more")
		}
	})
}

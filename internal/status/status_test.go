package status

import "testing"

func TestStaleClearIgnored(t *testing.T) {
	var l Line
	first, clear1 := l.Set("Expense added", Success)
	if !clear1 {
		t.Fatal("success message should auto-clear")
	}
	second, _ := l.Set("Expense updated", Success)

	if l.Clear(first) {
		t.Fatal("stale clear removed the newer message")
	}
	msg, ok := l.Current()
	if !ok || msg.Text != "Expense updated" {
		t.Fatalf("Current = (%+v, %v)", msg, ok)
	}

	if !l.Clear(second) {
		t.Fatal("current clear was ignored")
	}
	if _, ok := l.Current(); ok {
		t.Fatal("message still set after clear")
	}
}

func TestErrorsDoNotAutoClear(t *testing.T) {
	var l Line
	if _, auto := l.Set("description is empty", Error); auto {
		t.Fatal("error message should not request auto-clear")
	}
	if _, auto := l.Set("hello", Info); !auto {
		t.Fatal("info message should request auto-clear")
	}
}

func TestResetInvalidatesPendingClear(t *testing.T) {
	var l Line
	gen, _ := l.Set("a", Info)
	l.Reset()
	if l.Clear(gen) {
		t.Fatal("clear after reset should be a no-op")
	}
}

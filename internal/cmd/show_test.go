package cmd

import "testing"

func TestShow(t *testing.T) {
	withConfigHome(t)
	b := newStubBackend()
	res := executeCommand(t, b, "show", "--", "echo", "hello world", "-n")
	if res.err != nil {
		t.Fatalf("show error = %v", res.err)
	}
	// Arguments are not quoted.
	if res.stdout != "echo hello world -n\n" {
		t.Errorf("show output = %q", res.stdout)
	}
	if len(b.ran) != 0 {
		t.Errorf("show launched %q", b.ran)
	}
}

func TestShow_Quote(t *testing.T) {
	withConfigHome(t)
	res := executeCommand(t, newStubBackend(), "show", "--quote", "--", "echo", "hello world", "-n")
	if res.err != nil {
		t.Fatalf("show --quote error = %v", res.err)
	}
	if res.stdout != "echo 'hello world' -n\n" {
		t.Errorf("show --quote output = %q", res.stdout)
	}
}

package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
	args  []string
	query string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Books(ctx context.Context) error {
	f.calls = append(f.calls, "books")
	return nil
}
func (f *fakeExec) SearchBooks(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search")
	f.query = query
	return nil
}
func (f *fakeExec) Borrow(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "borrow")
	f.args = args
	return nil
}
func (f *fakeExec) Loans(ctx context.Context) error {
	f.calls = append(f.calls, "loans")
	return nil
}
func (f *fakeExec) ReturnLoan(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "return")
	f.args = args
	return nil
}
func (f *fakeExec) ReadingList(ctx context.Context) error {
	f.calls = append(f.calls, "readlist")
	return nil
}
func (f *fakeExec) AddNote(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "addnote")
	f.args = args
	return nil
}
func (f *fakeExec) EditNote(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "editnote")
	f.args = args
	return nil
}
func (f *fakeExec) RemoveEntry(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "remove")
	f.args = args
	return nil
}
func (f *fakeExec) Admin(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "admin")
	f.args = args
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"books",
		"search dune herbert",
		"borrow 3",
		"loans",
		"return 5",
		"readlist",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "books", "search", "borrow", "loans", "return", "readlist"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.query != "dune herbert" {
		t.Fatalf("search query: got %q", exec.query)
	}
}

func TestRunREPL_AdminArgsAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("admin deluser 9\nquit\n")
	exec := &fakeExec{loggedIn: true, admin: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "admin" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if len(exec.args) != 2 || exec.args[0] != "deluser" || exec.args[1] != "9" {
		t.Fatalf("unexpected args: %v", exec.args)
	}
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

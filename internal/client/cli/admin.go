package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonmaccc4/BookNest-library/internal/client/models"
)

// Admin dispatches the back-office subcommands. Every subcommand requires an
// admin session; a non-admin is sent back to the regular views.
func (a *App) Admin(ctx context.Context, args []string) error {
	if !a.authorize(true) {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: admin users|books|loans|adduser|edituser|deluser|addbook|editbook|delbook|delloan")
		return nil
	}

	sub := args[0]
	rest := args[1:]

	switch sub {
	case "users":
		return a.adminUsers(ctx)
	case "adduser":
		return a.adminAddUser(ctx)
	case "edituser":
		return a.adminEditUser(ctx, rest)
	case "deluser":
		return a.adminDeleteUser(ctx, rest)
	case "books":
		return a.adminBooks(ctx)
	case "addbook":
		return a.adminAddBook(ctx)
	case "editbook":
		return a.adminEditBook(ctx, rest)
	case "delbook":
		return a.adminDeleteBook(ctx, rest)
	case "loans":
		return a.adminLoans(ctx)
	case "delloan":
		return a.adminDeleteLoan(ctx, rest)
	default:
		printlnFn("Unknown admin command:", sub)
		return nil
	}
}

// Users.

func (a *App) adminUsers(ctx context.Context) error {
	if err := a.admin.LoadUsers(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	for _, u := range a.admin.Users() {
		role := "member"
		if u.IsAdmin {
			role = "admin"
		}
		printlnFn(fmt.Sprintf("%4d  %s <%s> [%s]", u.ID, u.Username, u.Email, role))
	}
	return nil
}

func (a *App) adminAddUser(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	isAdmin := GetConfirmation(a.reader, "Grant admin rights?", os.Stdout)

	user, err := a.admin.CreateUser(ctx, models.AdminUserInput{
		Username: username,
		Email:    email,
		Password: password,
		IsAdmin:  isAdmin,
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Created user", user.ID)
	return nil
}

func (a *App) adminEditUser(ctx context.Context, args []string) error {
	id, err := GetID(a.reader, args, "Enter user id to edit", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	isAdmin := GetConfirmation(a.reader, "Grant admin rights?", os.Stdout)

	upd := models.AdminUserUpdate{Username: username, Email: email, IsAdmin: isAdmin}
	if err := a.admin.UpdateUser(ctx, id, upd); err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("User updated.")
	return nil
}

func (a *App) adminDeleteUser(ctx context.Context, args []string) error {
	id, err := GetID(a.reader, args, "Enter user id to delete", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	deleted, err := a.admin.DeleteUser(ctx, id, func() bool {
		return GetConfirmation(a.reader, "Delete this user?", os.Stdout)
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if !deleted {
		printlnFn("Kept.")
		return nil
	}
	printlnFn("User deleted.")
	return nil
}

// Books.

func (a *App) adminBooks(ctx context.Context) error {
	if err := a.admin.LoadBooks(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	for _, b := range a.admin.Books() {
		printlnFn(fmt.Sprintf("%4d  %s by %s (%s)", b.ID, b.Title, b.Author, b.Genre))
	}
	return nil
}

func (a *App) adminAddBook(ctx context.Context) error {
	in, err := a.promptBookInput()
	if err != nil {
		return err
	}

	book, err := a.admin.CreateBook(ctx, in)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Created book", book.ID)
	return nil
}

func (a *App) adminEditBook(ctx context.Context, args []string) error {
	id, err := GetID(a.reader, args, "Enter book id to edit", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	in, err := a.promptBookInput()
	if err != nil {
		return err
	}

	if err := a.admin.UpdateBook(ctx, id, in); err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn("Book updated.")
	return nil
}

func (a *App) adminDeleteBook(ctx context.Context, args []string) error {
	id, err := GetID(a.reader, args, "Enter book id to delete", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	deleted, err := a.admin.DeleteBook(ctx, id, func() bool {
		return GetConfirmation(a.reader, "Delete this book?", os.Stdout)
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if !deleted {
		printlnFn("Kept.")
		return nil
	}
	printlnFn("Book deleted.")
	return nil
}

func (a *App) promptBookInput() (models.BookInput, error) {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return models.BookInput{}, err
	}
	author, err := getSimpleText(a.reader, "Author", os.Stdout)
	if err != nil {
		return models.BookInput{}, err
	}
	genre, err := getSimpleText(a.reader, "Genre", os.Stdout)
	if err != nil {
		return models.BookInput{}, err
	}
	return models.BookInput{Title: title, Author: author, Genre: genre}, nil
}

// Loans.

func (a *App) adminLoans(ctx context.Context) error {
	if err := a.admin.LoadLoans(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	for _, l := range a.admin.Loans() {
		parts := []string{fmt.Sprintf("%4d  %s: %s", l.ID, l.UserEmail, l.BookTitle)}
		if l.DueDate != nil {
			parts = append(parts, "due "+l.DueDate.Format("2006-01-02"))
		}
		if l.ReturnedAt != nil {
			parts = append(parts, "returned "+l.ReturnedAt.Format("2006-01-02"))
		}
		printlnFn(strings.Join(parts, "  "))
	}
	return nil
}

func (a *App) adminDeleteLoan(ctx context.Context, args []string) error {
	id, err := GetID(a.reader, args, "Enter loan id to delete", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	deleted, err := a.admin.DeleteLoan(ctx, id, func() bool {
		return GetConfirmation(a.reader, "Delete this loan record?", os.Stdout)
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if !deleted {
		printlnFn("Kept.")
		return nil
	}
	printlnFn("Loan record deleted.")
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/greengold/carbonai/inquiry"
)

func (a *app) inquiries(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("inquiries needs a subcommand: list, show, submit, read, reply or delete")
	}
	store := a.store()
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		list, err := store.List(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tURGENCY\tFROM\tSUBJECT\tRECEIVED")
		for _, inq := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				inq.ID, inq.Status, inq.Urgency, inq.SenderName, inq.Subject,
				inq.Timestamp.Format("2006-01-02 15:04"))
		}
		return w.Flush()

	case "show":
		id, err := oneArg("show", rest)
		if err != nil {
			return err
		}
		inq, err := store.Get(ctx, id)
		if err != nil {
			return err
		}
		a.printInquiry(inq)
		return nil

	case "submit":
		fs := flag.NewFlagSet("submit", flag.ContinueOnError)
		name := fs.String("name", "", "sender name")
		email := fs.String("email", "", "sender email")
		subject := fs.String("subject", "", "subject line")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		inq, err := store.Submit(ctx, inquiry.Submission{
			SenderName:  *name,
			SenderEmail: *email,
			Subject:     *subject,
			Message:     strings.Join(fs.Args(), " "),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, inq.ID)
		return nil

	case "read":
		id, err := oneArg("read", rest)
		if err != nil {
			return err
		}
		inq, err := store.MarkRead(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s %s\n", inq.ID, inq.Status)
		return nil

	case "reply":
		fs := flag.NewFlagSet("reply", flag.ContinueOnError)
		author := fs.String("author", inquiry.DefaultAuthor, "reply author")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if fs.NArg() < 2 {
			return fmt.Errorf("reply takes an inquiry ID and the reply text")
		}
		inq, err := store.Reply(ctx, fs.Arg(0), strings.Join(fs.Args()[1:], " "), *author)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s %s (%d replies)\n", inq.ID, inq.Status, len(inq.Replies))
		return nil

	case "delete":
		id, err := oneArg("delete", rest)
		if err != nil {
			return err
		}
		if err := store.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "deleted %s\n", id)
		return nil

	default:
		return fmt.Errorf("unknown inquiries subcommand %q", sub)
	}
}

func (a *app) printInquiry(inq inquiry.Inquiry) {
	fmt.Fprintf(a.stdout, "%s  [%s, %s]\n", inq.ID, inq.Status, inq.Urgency)
	fmt.Fprintf(a.stdout, "From:    %s <%s>\n", inq.SenderName, inq.SenderEmail)
	fmt.Fprintf(a.stdout, "Subject: %s\n", inq.Subject)
	fmt.Fprintf(a.stdout, "Date:    %s\n\n%s\n", inq.Timestamp.Format("2006-01-02 15:04"), inq.Message)
	for _, r := range inq.Replies {
		fmt.Fprintf(a.stdout, "\n> %s (%s):\n> %s\n", r.Author, r.Timestamp.Format("2006-01-02 15:04"), r.Text)
	}
}

func oneArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s takes one inquiry ID", cmd)
	}
	return args[0], nil
}

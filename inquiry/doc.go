// Package inquiry stores contact-form inquiries and admin replies.
//
// The whole list lives as one JSON array under a single key of a
// key-value Adapter. MemoryAdapter suits tests and short-lived tools;
// FileAdapter keeps the list on disk across runs:
//
//	s := inquiry.NewStore(inquiry.NewFileAdapter("inquiries.json"))
//	inq, err := s.Submit(ctx, inquiry.Submission{
//	    SenderName:  "Jane Doe",
//	    SenderEmail: "jane@example.com",
//	    Subject:     "Partnership",
//	    Message:     "We would like to pilot the platform.",
//	})
//
//	_, err = s.MarkRead(ctx, inq.ID)
//	_, err = s.Reply(ctx, inq.ID, "Thanks, we will be in touch.", "")
package inquiry

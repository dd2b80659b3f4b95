package mailer

import (
	"fmt"
	"strings"

	"github.com/studentorg/internal/db"
)

const signature = "Best regards,  \nStudent Organization Team"

var (
	contactTmpl = mustTemplate("contact", `
## New Contact Form Submission

- **Name:** {{md .Name}}
- **Email:** {{md .Email}}
- **Subject:** {{md .Subject}}

**Message:**

{{md .Message}}

---

This email was sent from your Student Organization website contact form.
`)

	newsletterTmpl = mustTemplate("newsletter", `
Hello!

Thank you for subscribing to our newsletter. You'll now receive updates about our events, activities, and announcements.

If you wish to unsubscribe at any time, please contact us.

`+signature)

	registrationTmpl = mustTemplate("registration", `
Hello {{md .Name}},

Thank you for registering for {{md .EventID}}!

Registration Details:

- Name: {{md .Name}}
- Email: {{md .Email}}
- Phone: {{md .Phone}}

We look forward to seeing you at the event!

`+signature)

	donationTmpl = mustTemplate("donation", `
Hello {{md .Name}},

Thank you for registering to donate blood!

Registration Details:

- Name: {{md .Name}}
- Blood Type: {{md .BloodTypeText}}
- Phone: {{md .Phone}}
- Age: {{.Age}}

Our team will contact you soon with further details.

Thank you for your generous contribution!

`+signature)
)

// Composer turns stored submissions into outbound messages.
type Composer struct {
	From         string
	ContactEmail string
}

// ContactNotification alerts staff about a new contact message. ok is false
// when no staff inbox is configured.
func (c Composer) ContactNotification(m db.ContactMessage) (Message, bool, error) {
	if strings.TrimSpace(c.ContactEmail) == "" {
		return Message{}, false, nil
	}
	text, html, err := Render(contactTmpl, m)
	if err != nil {
		return Message{}, false, err
	}
	return Message{
		From:    c.From,
		To:      []string{c.ContactEmail},
		ReplyTo: m.Email,
		Subject: fmt.Sprintf("Contact Form: %s", m.Subject),
		Text:    text,
		HTML:    html,
	}, true, nil
}

// NewsletterWelcome greets a new subscriber.
func (c Composer) NewsletterWelcome(s db.NewsletterSubscriber) (Message, error) {
	text, html, err := Render(newsletterTmpl, s)
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.From,
		To:      []string{s.Email},
		Subject: "Welcome to Our Newsletter!",
		Text:    text,
		HTML:    html,
	}, nil
}

// RegistrationConfirmation confirms an event sign-up to the registrant.
func (c Composer) RegistrationConfirmation(r db.EventRegistration) (Message, error) {
	text, html, err := Render(registrationTmpl, r)
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.From,
		To:      []string{r.Email},
		Subject: fmt.Sprintf("Event Registration Confirmation - %s", r.EventID),
		Text:    text,
		HTML:    html,
	}, nil
}

// DonationConfirmation confirms a blood donation registration to the donor.
func (c Composer) DonationConfirmation(d db.BloodDonation) (Message, error) {
	data := struct {
		db.BloodDonation
		BloodTypeText string
	}{BloodDonation: d, BloodTypeText: d.BloodType.Label()}

	text, html, err := Render(donationTmpl, data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		From:    c.From,
		To:      []string{d.Email},
		Subject: "Blood Donation Registration Confirmation",
		Text:    text,
		HTML:    html,
	}, nil
}

package mailer

import (
	"fmt"

	"glassfinder/internal/data/entity"
)

const (
	header     = `<h2>Glassfinder</h2>`
	biggerText = `style="font-size: 16px;"`
)

// VerificationMail carries the single-use code a new account confirms with.
func VerificationMail(to string, userID, code string) Message {
	return Message{
		To:      to,
		Subject: "Verify your Glassfinder account",
		HTML: fmt.Sprintf(`
			%s
			<p %s>Welcome to Glassfinder!</p>
			<p %s>Your verification code is <strong>%s</strong>.</p>
			<p %s>Enter it on the verification page to finish setting up your account (User#%s).</p>
		`, header, biggerText, biggerText, code, biggerText, userID),
	}
}

// LinkRequestMail acknowledges a pending request to become a shop,
// artist or brand.
func LinkRequestMail(to string, linkType entity.LinkType) Message {
	phrase := linkPhrase(linkType)

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Your request to become %s is being processed", phrase),
		HTML: fmt.Sprintf(`
			%s
			<p %s>We have received your request to become %s.</p>
			<p %s>Please allow 24-48 hours for your request to be processed.</p>
			<p %s>We will send you another email to notify you when a decision has been made.</p>
			<p %s>Thanks for using Glassfinder!</p>
		`, header, biggerText, phrase, biggerText, biggerText, biggerText),
	}
}

// LinkDecisionMail notifies the user of the admin's decision.
func LinkDecisionMail(to string, linkType entity.LinkType, approved bool) Message {
	phrase := linkPhrase(linkType)

	if approved {
		return Message{
			To:      to,
			Subject: fmt.Sprintf("You are now %s on Glassfinder", phrase),
			HTML: fmt.Sprintf(`
				%s
				<p %s>Good news: your request to become %s was approved.</p>
				<p %s>Sign in to manage your new profile.</p>
			`, header, biggerText, phrase, biggerText),
		}
	}

	return Message{
		To:      to,
		Subject: "An update on your Glassfinder link request",
		HTML: fmt.Sprintf(`
			%s
			<p %s>Unfortunately your request to become %s was not approved.</p>
			<p %s>You are welcome to submit a new request at any time.</p>
		`, header, biggerText, phrase, biggerText),
	}
}

func linkPhrase(linkType entity.LinkType) string {
	switch linkType {
	case entity.LinkTypeArtist:
		return "an artist"
	case entity.LinkTypeBrand:
		return "a brand"
	default:
		return "a shop"
	}
}

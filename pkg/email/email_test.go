package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() ContactEmailData {
	return ContactEmailData{
		Name:    "Jo",
		Email:   "jo@example.com",
		Subject: "Catering",
		Message: "Do you cater?\nWe are 30 people.",
	}
}

func TestOperatorNotification(t *testing.T) {
	msg, err := OperatorNotification("noreply@ahkiiburger.com", "hello@ahkiiburger.com", sampleData())
	require.NoError(t, err)

	assert.Equal(t, "noreply@ahkiiburger.com", msg.From)
	assert.Equal(t, "hello@ahkiiburger.com", msg.To)
	assert.Equal(t, "jo@example.com", msg.ReplyTo)
	assert.Equal(t, "New Contact Form Submission: Catering", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Jo")
	assert.Contains(t, msg.HTMLBody, "jo@example.com")
	assert.Contains(t, msg.HTMLBody, "Not provided")
	assert.Contains(t, msg.HTMLBody, "Do you cater?<br>We are 30 people.")
}

func TestOperatorNotificationWithPhone(t *testing.T) {
	data := sampleData()
	data.Phone = "+44 20 1234 5678"

	msg, err := OperatorNotification("noreply@ahkiiburger.com", "hello@ahkiiburger.com", data)
	require.NoError(t, err)
	assert.Contains(t, msg.HTMLBody, "+44 20 1234 5678")
	assert.NotContains(t, msg.HTMLBody, "Not provided")
}

func TestAcknowledgment(t *testing.T) {
	msg, err := Acknowledgment("noreply@ahkiiburger.com", sampleData())
	require.NoError(t, err)

	assert.Equal(t, "jo@example.com", msg.To)
	assert.Empty(t, msg.ReplyTo)
	assert.Equal(t, "We Received Your Message - Ahkii Burger", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Hi Jo,")
	assert.Contains(t, msg.HTMLBody, "Catering")
	assert.Contains(t, msg.HTMLBody, "The Ahkii Burger Team")
}

func TestMessageBodyIsEscaped(t *testing.T) {
	data := sampleData()
	data.Name = "<script>alert(1)</script>"
	data.Message = "a <b> tag\n& an ampersand"

	msg, err := OperatorNotification("noreply@ahkiiburger.com", "hello@ahkiiburger.com", data)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTMLBody, "<script>")
	assert.Contains(t, msg.HTMLBody, "&lt;script&gt;")
	assert.Contains(t, msg.HTMLBody, "a &lt;b&gt; tag<br>&amp; an ampersand")
}

func TestNl2brHandlesCRLF(t *testing.T) {
	assert.Equal(t, "one<br>two", string(nl2br("one\r\ntwo")))
	assert.Equal(t, "one<br>two", string(nl2br("one\ntwo")))
}

func TestBuildMIME(t *testing.T) {
	msg, err := OperatorNotification("noreply@ahkiiburger.com", "hello@ahkiiburger.com", sampleData())
	require.NoError(t, err)

	raw := string(buildMIME(msg))
	headers, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "From: noreply@ahkiiburger.com\r\n")
	assert.Contains(t, headers, "To: hello@ahkiiburger.com\r\n")
	assert.Contains(t, headers, "Reply-To: jo@example.com\r\n")
	assert.Contains(t, headers, "Subject: New Contact Form Submission: Catering\r\n")
	assert.Contains(t, headers, "Content-Type: text/html; charset=UTF-8")
	assert.Equal(t, msg.HTMLBody, body)
}

func TestBuildMIMEOmitsEmptyReplyTo(t *testing.T) {
	msg, err := Acknowledgment("noreply@ahkiiburger.com", sampleData())
	require.NoError(t, err)
	assert.NotContains(t, string(buildMIME(msg)), "Reply-To:")
}

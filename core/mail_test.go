package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmailMessage_Render(t *testing.T) {
	t.Run("plain body", func(t *testing.T) {
		msg := EmailMessage{Subject: "hi", BodyStr: "hello"}
		if assert.NoError(t, msg.Render("https://stockwise.io")) {
			assert.Equal(t, "hello", msg.TextContent)
			assert.Empty(t, msg.HTMLContent)
			assert.True(t, msg.HasContent())
			assert.False(t, msg.HasRecipients())
		}
	})

	t.Run("template", func(t *testing.T) {
		msg := EmailMessage{
			TemplateName: "quiz_result",
			TemplateData: struct {
				Phone       string
				CompletedAt time.Time
				Score       int
				Total       int
				Passed      bool
				Message     string
			}{
				Phone:       "138****5678",
				CompletedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
				Score:       7,
				Total:       10,
				Passed:      true,
				Message:     "恭喜及格！",
			},
		}
		if !assert.NoError(t, msg.Render("https://stockwise.io")) {
			return
		}
		for _, content := range []string{msg.TextContent, msg.HTMLContent} {
			assert.Contains(t, content, "138****5678")
			assert.Contains(t, content, "2024-03-01 09:30")
			assert.Contains(t, content, "及格")
		}
		assert.Contains(t, msg.TextContent, "https://stockwise.io")
	})

	t.Run("unknown template", func(t *testing.T) {
		msg := EmailMessage{TemplateName: "nope"}
		assert.Error(t, msg.Render(""))
	})
}

package mturk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExternalQuestion_ExactDocument(t *testing.T) {
	want := `<ExternalQuestion xmlns="http://mechanicalturk.amazonaws.com/AWSMechanicalTurkDataSchemas/2006-07-14/ExternalQuestion.xsd">` +
		`<ExternalURL>https://host/task/1</ExternalURL>` +
		`<FrameHeight>650</FrameHeight>` +
		`</ExternalQuestion>`

	assert.Equal(t, want, ExternalQuestion("https://host", "task/1", 650))
}

func TestExternalQuestion_FrameHeight(t *testing.T) {
	doc := ExternalQuestion("http://localhost:8080", "annotate/42", 900)
	assert.Contains(t, doc, "<ExternalURL>http://localhost:8080/annotate/42</ExternalURL>")
	assert.Contains(t, doc, "<FrameHeight>900</FrameHeight>")
}

package mturk

import "fmt"

// externalQuestionFormat is the fixed ExternalQuestion schema the service
// expects. The literal structure matters byte-for-byte; do not reformat.
const externalQuestionFormat = `<ExternalQuestion xmlns="http://mechanicalturk.amazonaws.com/AWSMechanicalTurkDataSchemas/2006-07-14/ExternalQuestion.xsd"><ExternalURL>%s/%s</ExternalURL><FrameHeight>%d</FrameHeight></ExternalQuestion>`

// ExternalQuestion builds the question document pointing workers at
// {localhost}/{page}, rendered in a frame of the given pixel height.
func ExternalQuestion(localhost, page string, height int) string {
	return fmt.Sprintf(externalQuestionFormat, localhost, page, height)
}

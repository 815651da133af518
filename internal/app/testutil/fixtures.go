package testutil

import (
	"encoding/base64"

	"audio-transcript/internal/app/model"
)

const (
	// TestAPIKey passes the Gemini key format checks
	TestAPIKey = "AIzaTest-1234567890abcdef1234567890"

	// HelloThereReply is a schema-conforming single turn reply
	HelloThereReply = `[{"speaker":"Speaker 1","lines":["Hello there."],"timestamp":"00:00:01"}]`

	// ConversationReply is a three turn, two speaker reply
	ConversationReply = `[
  {"speaker":"Speaker 1","lines":["Good morning.","Shall we start?"],"timestamp":"00:00:00"},
  {"speaker":"Speaker 2","lines":["Yes, let's go."],"timestamp":"00:00:04"},
  {"speaker":"Speaker 1","lines":["First item is the budget."],"timestamp":"00:00:07"}
]`
)

// SilenceMP3 is an ID3 header followed by one silent MPEG frame header
var SilenceMP3 = []byte("ID3\x03\x00\x00\x00\x00\x00\x00\xff\xfb\x90\x64\x00\x00\x00\x00")

// SilencePayload is SilenceMP3 encoded as an audio payload
func SilencePayload() model.AudioPayload {
	return model.AudioPayload{
		MimeType: "audio/mpeg",
		Data:     base64.StdEncoding.EncodeToString(SilenceMP3),
	}
}

// ConversationTranscript is the parsed form of ConversationReply
func ConversationTranscript() model.Transcript {
	return model.Transcript{
		{Speaker: "Speaker 1", Lines: []string{"Good morning.", "Shall we start?"}, Timestamp: "00:00:00"},
		{Speaker: "Speaker 2", Lines: []string{"Yes, let's go."}, Timestamp: "00:00:04"},
		{Speaker: "Speaker 1", Lines: []string{"First item is the budget."}, Timestamp: "00:00:07"},
	}
}

package transcript

import "google.golang.org/genai"

// ResponseMIMEType is the reply format demanded from the capability
const ResponseMIMEType = "application/json"

// Instruction is sent alongside the audio on every request
const Instruction = `You are an expert transcription service. Your task is to take this audio file and convert it into a structured, speaker-diarized format with timestamps.

- Transcribe the audio verbatim.
- Identify each distinct speaker.
- For each speaker's turn, provide a start timestamp in HH:MM:SS format.
- Group consecutive lines from the same speaker into a single turn.
- The output must be a clean, verbatim transcript.
- Ensure the output is a valid JSON array matching the provided schema.`

// TranscriptSchema describes an array of {speaker, lines, timestamp} objects
func TranscriptSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"speaker": {
					Type:        genai.TypeString,
					Description: "The identifier for the speaker (e.g., Speaker 1, Speaker 2, Speaker 3).",
				},
				"lines": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type:        genai.TypeString,
						Description: "A single line of verbatim text spoken by the speaker.",
					},
					Description: "An array of verbatim text lines spoken by this speaker in this turn.",
				},
				"timestamp": {
					Type:        genai.TypeString,
					Description: "The start timestamp of the speaker's turn in HH:MM:SS format.",
				},
			},
			Required: []string{"speaker", "lines", "timestamp"},
		},
	}
}

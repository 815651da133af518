// Package testutil provides shared test doubles and fixtures.
//
// Mocks (testify/mock):
//   - MockCapability: provider.Capability that records every request it receives
//   - MockTranscriber: the requester surface used by the HTTP services
//   - MockTranscriptService: services.TranscriptService for handler tests
//
// Fixtures (fixtures.go):
//   - TestAPIKey, a credential that passes the Gemini key format check
//   - HelloThereReply and ConversationReply, schema-conforming capability replies
//   - SilenceMP3 and SilencePayload, a minimal MP3 and its encoded payload
//
// # Usage Examples
//
//	func TestTranscribe(t *testing.T) {
//	    capability := testutil.NewMockCapability().ReplyWith(testutil.HelloThereReply)
//	    requester := transcript.NewRequester(transcript.Config{APIKey: testutil.TestAPIKey}, capability)
//
//	    result, err := requester.Transcribe(context.Background(), testutil.SilencePayload())
//	    require.NoError(t, err)
//	    assert.Len(t, result, 1)
//	}
package testutil

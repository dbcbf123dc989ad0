// Package speech adapts the Google Speech-to-Text REST API to the
// domain.Transcriber port.
package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"careerprep/internal/config"
	"careerprep/internal/domain"
	"careerprep/internal/logger"

	"go.uber.org/zap"
)

// GoogleTranscriber implements domain.Transcriber against the
// synchronous recognize endpoint of the Speech-to-Text v1 API.
type GoogleTranscriber struct {
	endpoint string
	apiKey   string
	language string
	client   *http.Client
}

// NewGoogleTranscriber builds a transcriber from the speech
// configuration. httpClient may be nil; a client with a 30 second
// timeout is used then.
func NewGoogleTranscriber(speechCfg config.SpeechConfig, httpClient *http.Client) *GoogleTranscriber {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	language := speechCfg.Language
	if language == "" {
		language = "en-US"
	}
	return &GoogleTranscriber{
		endpoint: speechCfg.Endpoint,
		apiKey:   speechCfg.APIKey,
		language: language,
		client:   httpClient,
	}
}

type recognizeRequest struct {
	Config recognizeConfig `json:"config"`
	Audio  recognizeAudio  `json:"audio"`
}

type recognizeConfig struct {
	Encoding        string `json:"encoding"`
	SampleRateHertz int    `json:"sampleRateHertz"`
	LanguageCode    string `json:"languageCode"`
}

type recognizeAudio struct {
	Content string `json:"content"`
}

type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"results"`
}

// Transcribe sends the recorded audio (16kHz LINEAR16 PCM) to the
// recognizer and returns the top transcript of the first result. An
// empty result set means the audio carried no recognizable speech,
// which is a caller error, not a service failure.
func (g *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", domain.NewInvalidInputError("Audio data is required")
	}

	payload := recognizeRequest{
		Config: recognizeConfig{
			Encoding:        "LINEAR16",
			SampleRateHertz: 16000,
			LanguageCode:    g.language,
		},
		Audio: recognizeAudio{Content: base64.StdEncoding.EncodeToString(audio)},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", domain.NewInternalError("failed to encode recognize request", err)
	}

	url := fmt.Sprintf("%s?key=%s", g.endpoint, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewInternalError("failed to build recognize request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Get().Error("speech recognition request failed", zap.Error(err))
		return "", domain.NewSpeechServiceError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Get().Error("speech recognition returned non-OK status",
			zap.Int("status", resp.StatusCode))
		return "", domain.NewSpeechServiceError(fmt.Errorf("recognize returned status %d", resp.StatusCode))
	}

	var parsed recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", domain.NewSpeechServiceError(err)
	}

	if len(parsed.Results) == 0 || len(parsed.Results[0].Alternatives) == 0 {
		return "", domain.NewSpeechUnintelligibleError()
	}
	return parsed.Results[0].Alternatives[0].Transcript, nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const assistantName = "ReFoundly AI"

type response struct {
	Query   string
	Answer  string
	Matched bool
}

type jsonResponse struct {
	Query   string `json:"query"`
	Answer  string `json:"answer"`
	Matched bool   `json:"matched"`
}

func writeResponse(out io.Writer, resp response, asJSON bool) error {
	if asJSON {
		return writeJSONResponse(out, resp)
	}
	return writeHumanResponse(out, resp)
}

func writeJSONResponse(out io.Writer, resp response) error {
	enc := json.NewEncoder(out)
	return enc.Encode(jsonResponse(resp))
}

func writeHumanResponse(out io.Writer, resp response) error {
	_, err := fmt.Fprintf(out, "%s: %s\n", assistantName, resp.Answer)
	return err
}

func logResponse(logger *zap.Logger, resp response) {
	if logger == nil {
		return
	}
	logger.Info("response",
		zap.String("query", resp.Query),
		zap.Bool("matched", resp.Matched),
		zap.Int("answer_len", len(resp.Answer)),
	)
}

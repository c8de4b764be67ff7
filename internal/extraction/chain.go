package extraction

import (
	"context"

	"go.uber.org/zap"

	"github.com/petro-joseph/sleekjobfinder-sub000/internal/llm"
	"github.com/petro-joseph/sleekjobfinder-sub000/internal/types"
)

// Tier names reported in parse results and logs
const (
	TierRemoteParser = "remote_parser"
	TierLLM          = "llm"
	TierRegex        = "regex"
)

// ParserChain tries parsers in order of fidelity: the specialized remote
// service, then LLM extraction, then the regex fallback. A tier's failure
// is converted into "try the next one" and never propagates to the
// caller; the regex tier cannot fail, so Parse always yields a result.
type ParserChain struct {
	remote *ParserService
	client llm.Client
	logger *zap.Logger
}

// NewParserChain builds a chain; remote and client may each be nil, which
// simply skips that tier.
func NewParserChain(remote *ParserService, client llm.Client, logger *zap.Logger) *ParserChain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParserChain{remote: remote, client: client, logger: logger}
}

// Parse runs the chain over the extracted text (and original file bytes,
// which the remote tier uploads as-is). Returns the parsed payload and
// the name of the tier that produced it.
func (c *ParserChain) Parse(ctx context.Context, data []byte, filename, text string) (*types.RawParsedResume, string) {
	if c.remote != nil {
		raw, err := c.remote.Parse(ctx, data, filename)
		switch {
		case err != nil:
			c.logger.Warn("remote parser tier failed, falling through",
				zap.String("filename", filename), zap.Error(err))
		case raw.Personal == nil || raw.Personal.Name.String() == "":
			// A nameless candidate means the service could not actually
			// read the document.
			c.logger.Warn("remote parser returned no candidate name, falling through",
				zap.String("filename", filename))
		default:
			if raw.RawText.String() == "" {
				raw.RawText = types.FlexString(text)
			}
			return raw, TierRemoteParser
		}
	}

	if c.client != nil {
		raw, err := llmExtract(ctx, c.client, text)
		if err != nil {
			c.logger.Warn("llm extraction tier failed, falling through",
				zap.String("filename", filename), zap.Error(err))
		} else {
			return raw, TierLLM
		}
	}

	return RegexExtract(text), TierRegex
}

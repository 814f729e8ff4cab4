package lexers

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/vandior/vlex/lexconfigs"
	"github.com/vandior/vlex/logs"
	"github.com/vandior/vlex/tokens"
)

type Module struct {
	dscope.Module
	Logs       logs.Module
	LexConfigs lexconfigs.Module
}

// Tokenize scans one input. ctx only carries the log span; a scan is never interrupted.
type Tokenize func(ctx context.Context, fileName string, input string) (*tokens.Buffer, error)

func (Module) Tokenize(
	logger logs.Logger,
	newSpan logs.NewSpan,
	policy lexconfigs.UnmatchedPolicy,
) Tokenize {
	return func(ctx context.Context, fileName string, input string) (*tokens.Buffer, error) {
		ctx, _ = newSpan(ctx, "tokenize")

		if decoded, ok := DecodeText(fileName); !ok {
			logger.WarnContext(ctx, "file name is not valid utf-8")
			fileName = decoded
		}
		if decoded, ok := DecodeText(input); !ok {
			logger.WarnContext(ctx, "input is not valid utf-8", "file", fileName)
			input = decoded
		}

		buf, err := TokenizeText(fileName, input, Options{
			Unmatched: policy,
			OnUnknown: func(token tokens.Token) {
				logger.WarnContext(ctx, "unmatched input",
					"text", token.Lexeme,
					"location", token.Location.Compact(),
				)
			},
		})
		if err != nil {
			logger.ErrorContext(ctx, "tokenize", "file", fileName, "error", err)
			return nil, logs.WrapSpan(ctx, err)
		}

		logger.DebugContext(ctx, "tokenized",
			"file", fileName,
			"tokens", buf.Len(),
		)
		return buf, nil
	}
}

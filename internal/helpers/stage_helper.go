package helpers

import (
	"strings"

	"github.com/convertly/convertly-api/internal/constants"
)

// Runtime stages. The stage picks the log encoder, the gin mode default and
// whether AWS clients are built.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

var stageAliases = map[string]string{
	StageProd:     StageProd,
	"production":  StageProd,
	StageDev:      StageDev,
	"development": StageDev,
	StageLocal:    StageLocal,
}

// ParseStage normalizes a stage name from the environment. Case and
// surrounding whitespace are ignored and the long forms "production" and
// "development" are accepted. ok is false for anything else.
func ParseStage(raw string) (string, bool) {
	stage, ok := stageAliases[strings.ToLower(strings.TrimSpace(raw))]
	return stage, ok
}

// IsValidStage reports whether stage is already one of the canonical names.
func IsValidStage(stage string) bool {
	canonical, ok := ParseStage(stage)
	return ok && canonical == stage
}

package parse

import (
	"github.com/ucodelang/ucls/internal/sourcecode"
)

type NodeSpan = sourcecode.NodeSpan
type PositionRange = sourcecode.PositionRange
type ParsingError = sourcecode.ParsingError
type ParsingErrorAggregation = sourcecode.ParsingErrorAggregation

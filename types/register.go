package types

import "github.com/zero-day-ai/enums"

func init() {
	enums.Register(ColorTable)
	enums.Register(DirectionTable)
}

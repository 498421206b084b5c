// SPDX-License-Identifier: Apache-2.0

package strategies

import "github.com/Yug063/questionsep/internal/separator"

// NewDefaultEngine builds an Engine with the standard strategy chain.
// Mixed punctuation is checked before the direct question path so a line
// with several terminators is never emitted as a single question.
func NewDefaultEngine() *separator.Engine {
	return separator.NewEngine(
		NewSentenceFallback(),
		NewMixedPunctuation(),
		NewDirectQuestion(),
		NewFallbackTransform(),
	)
}

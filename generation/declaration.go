/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package generation

import (
	"slices"

	"dirpx.dev/nsx/apis"
)

// Name is the namespace label used in diagnostics.
const Name = "generation"

// Backends the generation namespace can be gated on.
const (
	Torch apis.Backend = "torch"
	TF    apis.Backend = "tf"
	Flax  apis.Backend = "flax"
)

// groups is the export set. Group order defines Names() order.
var groups = []apis.Group{
	{Submodule: "configuration_utils", Symbols: []string{"GenerationConfig", "GenerationMode"}},
	{Submodule: "streamers", Symbols: []string{"TextIteratorStreamer", "TextStreamer"}},

	{Submodule: "beam_constraints", Backend: Torch, Symbols: []string{
		"Constraint",
		"ConstraintListState",
		"DisjunctiveConstraint",
		"PhrasalConstraint",
	}},
	{Submodule: "beam_search", Backend: Torch, Symbols: []string{
		"BeamHypotheses",
		"BeamScorer",
		"BeamSearchScorer",
		"ConstrainedBeamSearchScorer",
	}},
	{Submodule: "candidate_generator", Backend: Torch, Symbols: []string{
		"AssistedCandidateGenerator",
		"CandidateGenerator",
		"PromptLookupCandidateGenerator",
	}},
	{Submodule: "logits_process", Backend: Torch, Symbols: []string{
		"AlternatingCodebooksLogitsProcessor",
		"ClassifierFreeGuidanceLogitsProcessor",
		"EncoderNoRepeatNGramLogitsProcessor",
		"EncoderRepetitionPenaltyLogitsProcessor",
		"EpsilonLogitsWarper",
		"EtaLogitsWarper",
		"ExponentialDecayLengthPenalty",
		"ForcedBOSTokenLogitsProcessor",
		"ForcedEOSTokenLogitsProcessor",
		"ForceTokensLogitsProcessor",
		"HammingDiversityLogitsProcessor",
		"InfNanRemoveLogitsProcessor",
		"LogitNormalization",
		"LogitsProcessor",
		"LogitsProcessorList",
		"LogitsWarper",
		"MinLengthLogitsProcessor",
		"MinNewTokensLengthLogitsProcessor",
		"NoBadWordsLogitsProcessor",
		"NoRepeatNGramLogitsProcessor",
		"PrefixConstrainedLogitsProcessor",
		"RepetitionPenaltyLogitsProcessor",
		"SequenceBiasLogitsProcessor",
		"SuppressTokensLogitsProcessor",
		"SuppressTokensAtBeginLogitsProcessor",
		"TemperatureLogitsWarper",
		"TopKLogitsWarper",
		"TopPLogitsWarper",
		"TypicalLogitsWarper",
		"UnbatchedClassifierFreeGuidanceLogitsProcessor",
		"WhisperTimeStampLogitsProcessor",
	}},
	{Submodule: "stopping_criteria", Backend: Torch, Symbols: []string{
		"MaxNewTokensCriteria",
		"MaxLengthCriteria",
		"MaxTimeCriteria",
		"StoppingCriteria",
		"StoppingCriteriaList",
		"validate_stopping_criteria",
	}},
	{Submodule: "utils", Backend: Torch, Symbols: []string{
		"GenerationMixin",
		"top_k_top_p_filtering",
		"GreedySearchEncoderDecoderOutput",
		"GreedySearchDecoderOnlyOutput",
		"SampleEncoderDecoderOutput",
		"SampleDecoderOnlyOutput",
		"BeamSearchEncoderDecoderOutput",
		"BeamSearchDecoderOnlyOutput",
		"BeamSampleEncoderDecoderOutput",
		"BeamSampleDecoderOnlyOutput",
		"ContrastiveSearchEncoderDecoderOutput",
		"ContrastiveSearchDecoderOnlyOutput",
		"GenerateBeamDecoderOnlyOutput",
		"GenerateBeamEncoderDecoderOutput",
		"GenerateDecoderOnlyOutput",
		"GenerateEncoderDecoderOutput",
	}},

	{Submodule: "tf_logits_process", Backend: TF, Symbols: []string{
		"TFForcedBOSTokenLogitsProcessor",
		"TFForcedEOSTokenLogitsProcessor",
		"TFForceTokensLogitsProcessor",
		"TFLogitsProcessor",
		"TFLogitsProcessorList",
		"TFLogitsWarper",
		"TFMinLengthLogitsProcessor",
		"TFNoBadWordsLogitsProcessor",
		"TFNoRepeatNGramLogitsProcessor",
		"TFRepetitionPenaltyLogitsProcessor",
		"TFSuppressTokensAtBeginLogitsProcessor",
		"TFSuppressTokensLogitsProcessor",
		"TFTemperatureLogitsWarper",
		"TFTopKLogitsWarper",
		"TFTopPLogitsWarper",
	}},
	{Submodule: "tf_utils", Backend: TF, Symbols: []string{
		"TFGenerationMixin",
		"tf_top_k_top_p_filtering",
		"TFGreedySearchDecoderOnlyOutput",
		"TFGreedySearchEncoderDecoderOutput",
		"TFSampleEncoderDecoderOutput",
		"TFSampleDecoderOnlyOutput",
		"TFBeamSearchEncoderDecoderOutput",
		"TFBeamSearchDecoderOnlyOutput",
		"TFBeamSampleEncoderDecoderOutput",
		"TFBeamSampleDecoderOnlyOutput",
		"TFContrastiveSearchEncoderDecoderOutput",
		"TFContrastiveSearchDecoderOnlyOutput",
	}},

	{Submodule: "flax_logits_process", Backend: Flax, Symbols: []string{
		"FlaxForcedBOSTokenLogitsProcessor",
		"FlaxForcedEOSTokenLogitsProcessor",
		"FlaxForceTokensLogitsProcessor",
		"FlaxLogitsProcessor",
		"FlaxLogitsProcessorList",
		"FlaxLogitsWarper",
		"FlaxMinLengthLogitsProcessor",
		"FlaxSuppressTokensAtBeginLogitsProcessor",
		"FlaxSuppressTokensLogitsProcessor",
		"FlaxTemperatureLogitsWarper",
		"FlaxTopKLogitsWarper",
		"FlaxTopPLogitsWarper",
		"FlaxWhisperTimeStampLogitsProcessor",
	}},
	{Submodule: "flax_utils", Backend: Flax, Symbols: []string{
		"FlaxGenerationMixin",
		"FlaxGreedySearchOutput",
		"FlaxSampleOutput",
		"FlaxBeamSearchOutput",
	}},
}

// Declaration returns the generation export set. The result is a deep copy
// and may be modified by the caller.
func Declaration() apis.Declaration {
	out := apis.Declaration{Name: Name, Groups: make([]apis.Group, len(groups))}
	for i, g := range groups {
		g.Symbols = slices.Clone(g.Symbols)
		out.Groups[i] = g
	}
	return out
}

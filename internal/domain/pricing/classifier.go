package pricing

import (
	"errors"

	"arborlove_quote/internal/domain/entities"
)

var ErrUnknownServiceType = errors.New("unknown service type")

// Classification selects which profile of a rate table applies to a tree.
type Classification string

const (
	ClassificationStandard    Classification = "standard"
	ClassificationNonStandard Classification = "nonStandard"
	ClassificationOthers      Classification = "others"
)

const (
	TreePalm       = "Palm"
	TreePine       = "Pine"
	TreePodocarpus = "Podocarpus"
	TreeFicus      = "Ficus"
	TreeEucalyptus = "Eucalyptus"
	TreeCarrotwood = "Carrotwood"
)

// Both spellings are in circulation: the first is what the pricing tables were
// written against, the second is what the option catalog publishes.
var unknownTreeSentinels = map[string]struct{}{
	"I'm not sure what kind of tree I have":  {},
	"I am not sure what kind of tree I have": {},
}

var nonStandardTrees = map[string]struct{}{
	TreePalm:       {},
	TreePine:       {},
	TreePodocarpus: {},
	TreeFicus:      {},
	TreeEucalyptus: {},
	TreeCarrotwood: {},
}

// ClassifyTree maps a free-form tree type to its classification. Unrecognised
// names are standard trees.
func ClassifyTree(treeType string) Classification {
	if _, ok := nonStandardTrees[treeType]; ok {
		return ClassificationNonStandard
	}
	if _, ok := unknownTreeSentinels[treeType]; ok {
		return ClassificationOthers
	}
	return ClassificationStandard
}

// Classify picks the rate profile for a tree and service type. Only an
// unknown service type is an error; tree types never are.
func Classify(treeType string, serviceType entities.ServiceType) (RateProfile, error) {
	return ProfileFor(serviceType, ClassifyTree(treeType))
}

// usesRemovalOverride reports whether the Ficus/Carrotwood height override
// table applies to the line item.
func usesRemovalOverride(treeType string, serviceType entities.ServiceType) bool {
	return serviceType == entities.ServiceTypeTreeRemoval &&
		(treeType == TreeFicus || treeType == TreeCarrotwood)
}

package model

// FeedTypes are the ration stages offered in the daily log form, by protein
// content.
var FeedTypes = []string{
	"starter 23%",
	"grower 21%",
	"finisher 19%",
}

// DeathCauses are the selectable causes for daily mortality records.
var DeathCauses = []string{
	"natural",
	"mycotoxins",
	"heat stress",
	"respiratory",
	"coccidiosis",
	"culling",
	"other",
}

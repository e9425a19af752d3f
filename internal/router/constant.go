package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
	LogPrefixNew      = "internal.router.New"
)

// Product identifiers accepted by the create-order classifier.
const (
	MinProductID = 1
	MaxProductID = 999999
)

// Languages shipped with the embedded lexicon.
const (
	LangEnglish = "en"
	LangRussian = "ru"
	LangFrench  = "fr"
)

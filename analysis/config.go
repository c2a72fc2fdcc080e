package analysis

// Theme is a named keyword set. A deck carries the theme when any of the
// keywords occurs in its keyword frequency map.
type Theme struct {
	Name     string
	Keywords []string
}

// Config holds the analyzer's lexicons and limits.
type Config struct {
	// StopWords are excluded from keyword counts (compared case-folded)
	StopWords []string

	// Themes are evaluated in order
	Themes []Theme

	// FallbackTheme is reported when no theme matches
	FallbackTheme string

	// MinTokenLength is the shortest token counted, in runes
	// Default: 2
	MinTokenLength int

	// OutlineTitleMaxLength: a slide title must be shorter than this, in runes
	// Default: 50
	OutlineTitleMaxLength int

	// KeyPointMinLength and KeyPointMaxLength are exclusive bounds, in runes
	// Default: 5 and 200
	KeyPointMinLength int
	KeyPointMaxLength int

	// MaxKeyPoints caps the key point list
	// Default: 20
	MaxKeyPoints int
}

// DefaultConfig returns the standard lexicons and limits.
func DefaultConfig() Config {
	return Config{
		StopWords:             DefaultStopWords(),
		Themes:                DefaultThemes(),
		FallbackTheme:         "general",
		MinTokenLength:        2,
		OutlineTitleMaxLength: 50,
		KeyPointMinLength:     5,
		KeyPointMaxLength:     200,
		MaxKeyPoints:          20,
	}
}

// DefaultStopWords returns common English and Chinese function words.
func DefaultStopWords() []string {
	return []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "any", "can",
		"her", "was", "one", "our", "out", "his", "has", "had", "how", "its",
		"who", "did", "get", "may", "him", "she", "use", "way", "many", "then",
		"them", "these", "this", "that", "with", "from", "have", "will", "your",
		"what", "when", "where", "which", "while", "into", "than", "there",
		"their", "they", "been", "were", "also", "more", "most", "some", "such",
		"only", "over", "very", "just", "about", "each", "other", "should",
		"would", "could", "is", "it", "in", "on", "of", "to", "as", "at", "by",
		"an", "be", "or", "if", "we", "us", "do", "so", "no", "up", "my", "me",
		"我们", "你们", "他们", "这个", "那个", "以及", "可以", "一个", "没有",
		"什么", "因为", "所以", "但是", "如果", "已经", "进行", "通过",
	}
}

// DefaultThemes returns the built-in category lexicon.
func DefaultThemes() []Theme {
	return []Theme{
		{Name: "technology", Keywords: []string{
			"ai", "technology", "software", "data", "cloud", "digital", "algorithm",
			"system", "platform", "network", "技术", "人工智能", "数据", "算法", "系统",
		}},
		{Name: "management", Keywords: []string{
			"management", "team", "leadership", "strategy", "process", "project",
			"organization", "goal", "管理", "团队", "战略", "项目", "组织",
		}},
		{Name: "marketing", Keywords: []string{
			"marketing", "brand", "customer", "market", "sales", "campaign",
			"promotion", "营销", "品牌", "客户", "市场", "销售",
		}},
		{Name: "education", Keywords: []string{
			"education", "learning", "student", "course", "teaching", "training",
			"school", "教育", "学习", "学生", "课程", "培训",
		}},
		{Name: "product", Keywords: []string{
			"product", "feature", "design", "user", "release", "roadmap",
			"产品", "功能", "设计", "用户",
		}},
	}
}

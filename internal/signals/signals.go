// Package signals derives the five sub-scores of a ScoreVector from the
// matcher output and the raw requirement/sentence texts. Each function is a
// pure text heuristic returning a value already inside its declared domain.
package signals

import (
	"math"
	"strings"

	"github.com/jonathan/hiring-agent/internal/types"
)

// roleFitTopN caps how many of the strongest matches feed the role-fit mean.
const roleFitTopN = 10

// densityScale converts keyword-hits-per-sentence into a [0,1] score.
const densityScale = 5.0

var strengthKeywords = []string{
	"expert", "advanced", "proficient", "experienced",
	"senior", "lead", "architect", "specialist",
	"years", "projects", "deployed", "production",
}

var growthKeywords = []string{
	"learning", "course", "certification", "training",
	"bootcamp", "internship", "project", "hackathon",
	"self-taught", "passionate", "eager", "motivated",
}

// Technical keyword categories for domain compatibility.
var (
	pythonKeywords = []string{"python", "django", "flask", "fastapi", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras"}
	mlKeywords     = []string{"machine learning", "ml", "data science", "ai", "deep learning", "neural network", "model training"}
	dataKeywords   = []string{"data analysis", "data processing", "sql", "postgresql", "mongodb", "data visualization"}
	webKeywords    = []string{"api", "rest", "http", "web", "backend", "frontend"}
	javaKeywords   = []string{"java", "spring", "hibernate", "j2ee", "maven", "gradle"}
	cppKeywords    = []string{"c++", "cpp", "stl", "boost"}
)

// languageEquivalents maps a required language to skills that imply it.
var languageEquivalents = map[string][]string{
	"python":     {"machine learning", "data science", "tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy"},
	"javascript": {"javascript", "typescript", "node", "nodejs", "react", "angular", "vue"},
	"java":       {"java", "spring", "j2ee", "kotlin"},
	"c++":        {"c++", "cpp"},
}

// RoleFit is the mean similarity of the strongest matches (at most ten).
// No matches means no evidence of fit.
func RoleFit(matches []types.Match) float64 {
	if len(matches) == 0 {
		return 0.0
	}

	topN := min(roleFitTopN, len(matches))
	total := 0.0
	for _, match := range matches[:topN] {
		total += match.Similarity
	}
	return round3(total / float64(topN))
}

// CapabilityStrength scores seniority/delivery keyword density across the
// resume sentences.
func CapabilityStrength(sentences []string) float64 {
	return keywordDensityScore(sentences, strengthKeywords)
}

// GrowthPotential scores learning-indicator keyword density.
func GrowthPotential(sentences []string) float64 {
	return keywordDensityScore(sentences, growthKeywords)
}

func keywordDensityScore(sentences []string, keywords []string) float64 {
	if len(sentences) == 0 {
		return 0.0
	}

	hits := 0
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				hits++
			}
		}
	}

	score := math.Min(1.0, float64(hits)/float64(len(sentences))*densityScale)
	return round3(score)
}

// DomainCompatibility measures how much of the job's technical vocabulary the
// resume covers, category by category, with a penalty for resumes rooted in
// an incompatible stack (pure Java/C++ against a Python/ML posting).
func DomainCompatibility(requirements, sentences []string) float64 {
	if len(requirements) == 0 || len(sentences) == 0 {
		return 0.0
	}

	jdText := strings.ToLower(strings.Join(requirements, " "))
	resumeText := strings.ToLower(strings.Join(sentences, " "))

	pythonScore := categoryCoverage(pythonKeywords, jdText, resumeText)
	mlScore := categoryCoverage(mlKeywords, jdText, resumeText)
	dataScore := categoryCoverage(dataKeywords, jdText, resumeText)
	webScore := categoryCoverage(webKeywords, jdText, resumeText)

	pythonInJD := containsAny(jdText, pythonKeywords) || containsAny(jdText, mlKeywords)
	wrongStack := containsAny(resumeText, javaKeywords) || containsAny(resumeText, cppKeywords)
	if pythonInJD && wrongStack {
		hasPython := containsAny(resumeText, pythonKeywords) || containsAny(resumeText, mlKeywords)
		if !hasPython {
			return round3(math.Max(webScore*0.3, 0.1))
		}
	}

	total := 0.0
	relevant := 0
	for _, score := range []float64{pythonScore, mlScore, dataScore, webScore} {
		if score > 0 {
			total += score
			relevant++
		}
	}
	if relevant == 0 {
		return 0.0
	}
	return round3(math.Min(1.0, total/float64(relevant)))
}

// categoryCoverage returns the share of the category's JD keywords that the
// resume also mentions, or 0 when the JD never mentions the category.
func categoryCoverage(keywords []string, jdText, resumeText string) float64 {
	jdCount := 0
	resumeCount := 0
	for _, keyword := range keywords {
		if strings.Contains(jdText, keyword) {
			jdCount++
		}
		if strings.Contains(resumeText, keyword) {
			resumeCount++
		}
	}
	if jdCount == 0 {
		return 0
	}
	return float64(resumeCount) / float64(jdCount)
}

// ExecutionLanguage reports whether the candidate has the required
// programming language: 1 for a direct mention or a close equivalent, else 0.
func ExecutionLanguage(requiredLanguage string, sentences []string) float64 {
	if requiredLanguage == "" || len(sentences) == 0 {
		return 0
	}

	resumeText := strings.ToLower(strings.Join(sentences, " "))
	required := strings.ToLower(strings.TrimSpace(requiredLanguage))

	if strings.Contains(resumeText, required) {
		return 1
	}
	if equivalents, ok := languageEquivalents[required]; ok && containsAny(resumeText, equivalents) {
		return 1
	}
	return 0
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func round3(value float64) float64 {
	return math.Round(value*1000) / 1000
}

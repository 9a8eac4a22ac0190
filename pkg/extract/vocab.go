package extract

import "regexp"

// techTerm is one entry in the fixed technology vocabulary. The pattern
// is precompiled at init; terms containing non-word characters need
// hand-written patterns because \b cannot anchor against them.
type techTerm struct {
	name    string
	pattern *regexp.Regexp
}

func wordTerm(name string) techTerm {
	return techTerm{name: name, pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)}
}

func customTerm(name, pattern string) techTerm {
	return techTerm{name: name, pattern: regexp.MustCompile(pattern)}
}

// techVocabulary is the immutable table of technology names the frequency
// pass counts. Order here fixes the output order of promoted candidates.
var techVocabulary = []techTerm{
	// Languages
	wordTerm("python"),
	wordTerm("javascript"),
	wordTerm("typescript"),
	wordTerm("golang"),
	wordTerm("rust"),
	wordTerm("java"),
	wordTerm("kotlin"),
	wordTerm("swift"),
	wordTerm("ruby"),
	wordTerm("php"),
	wordTerm("scala"),
	wordTerm("elixir"),
	customTerm("c++", `(?i)\bc\+\+`),
	customTerm("c#", `(?i)\bc#`),
	customTerm(".net", `(?i)\.net\b`),

	// Frameworks and runtimes
	wordTerm("react"),
	wordTerm("vue"),
	wordTerm("angular"),
	wordTerm("svelte"),
	customTerm("next.js", `(?i)\bnext\.?js\b`),
	customTerm("node.js", `(?i)\bnode(\.?js)?\b`),
	wordTerm("django"),
	wordTerm("flask"),
	wordTerm("fastapi"),
	wordTerm("rails"),
	wordTerm("laravel"),
	wordTerm("spring"),
	wordTerm("express"),
	wordTerm("graphql"),
	wordTerm("grpc"),
	wordTerm("tailwind"),
	wordTerm("webpack"),
	wordTerm("vite"),
	wordTerm("pytorch"),
	wordTerm("tensorflow"),

	// Datastores and messaging
	customTerm("postgres", `(?i)\bpostgres(ql)?\b`),
	wordTerm("mysql"),
	wordTerm("sqlite"),
	wordTerm("mongodb"),
	wordTerm("redis"),
	wordTerm("elasticsearch"),
	wordTerm("kafka"),
	wordTerm("rabbitmq"),

	// Cloud and devops
	wordTerm("docker"),
	wordTerm("kubernetes"),
	wordTerm("terraform"),
	wordTerm("ansible"),
	wordTerm("aws"),
	wordTerm("azure"),
	wordTerm("gcp"),
	wordTerm("vercel"),
	wordTerm("netlify"),
	wordTerm("nginx"),
	wordTerm("linux"),
	wordTerm("git"),
	wordTerm("github"),
}

package mcp

import "github.com/mark3labs/mcp-go/mcp"

var todayToolDef = mcp.NewTool("word_today",
	mcp.WithDescription("Fetch a random word of the day with its definition and record it in history. "+
		"Never fails on lookup problems: a built-in word is returned instead."),
	mcp.WithBoolean("no_save",
		mcp.Description("Return the word without recording it in history (default: false)"),
	),
)

var defineToolDef = mcp.NewTool("word_define",
	mcp.WithDescription("Look up the definition of a specific English word."),
	mcp.WithString("headword",
		mcp.Required(),
		mcp.Description("Word to look up"),
	),
	mcp.WithBoolean("save",
		mcp.Description("Record the word in history (default: false)"),
	),
)

var historyToolDef = mcp.NewTool("word_history",
	mcp.WithDescription("List previously viewed words, most recent first. Each headword appears once."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithNumber("limit",
		mcp.Description("Maximum words to return (default: all, max: 500)"),
	),
	mcp.WithNumber("offset",
		mcp.Description("Words to skip (default: 0)"),
	),
)

var showToolDef = mcp.NewTool("word_show",
	mcp.WithDescription("Show a word saved in history. Matching ignores case."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("headword",
		mcp.Required(),
		mcp.Description("Saved word to show"),
	),
)

var latestToolDef = mcp.NewTool("word_latest",
	mcp.WithDescription("Return the most recently viewed word, or null when history is empty."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var clearToolDef = mcp.NewTool("word_clear",
	mcp.WithDescription("Delete all saved words from history. Cannot be undone."),
	mcp.WithDestructiveHintAnnotation(true),
)

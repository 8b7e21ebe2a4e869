package engine

// BadgeDefinition is one static catalog entry. A badge watches exactly one
// named derived statistic and defines five ascending tier thresholds.
//
// Secret badges are binary at tier 1. Aspirational badges are binary at
// tier 5. All other badges unlock a strictly ascending prefix of tiers.
type BadgeDefinition struct {
	ID           string
	Name         string
	Icon         string
	Description  string
	Category     string
	Stat         string
	Tiers        [5]int64
	Trigger      string
	Secret       bool
	Aspirational bool
}

// Badge categories.
const (
	CategoryVolume            = "volume"
	CategoryToolMastery       = "tool_mastery"
	CategoryTime              = "time"
	CategoryBehavioral        = "behavioral"
	CategoryResilience        = "resilience"
	CategoryShipping          = "shipping"
	CategoryMultiAgent        = "multi_agent"
	CategoryWildCard          = "wild_card"
	CategorySessionBehavior   = "session_behavior"
	CategoryPromptPatterns    = "prompt_patterns"
	CategoryErrorRecovery     = "error_recovery"
	CategoryToolCombos        = "tool_combos"
	CategoryProjectDedication = "project_dedication"
	CategoryTokenUsage        = "token_usage"
	CategoryAspirational      = "aspirational"
	CategorySecret            = "secret"
)

// BadgeCatalog is the full declarative badge table. It is data, not code:
// every badge is scored by the same Evaluate function.
var BadgeCatalog = []BadgeDefinition{
	// === VOLUME ===
	{ID: "first_prompt", Name: "First Prompt", Icon: "💬", Description: "Submit prompts", Category: CategoryVolume, Stat: "totalPrompts", Tiers: [5]int64{1, 100, 1000, 5000, 25000}, Trigger: "Submit a prompt"},
	{ID: "tool_time", Name: "Tool Time", Icon: "🔧", Description: "Make tool calls", Category: CategoryVolume, Stat: "totalToolCalls", Tiers: [5]int64{10, 500, 5000, 25000, 100000}, Trigger: "Let the agent use a tool"},
	{ID: "marathon", Name: "Marathon", Icon: "🏃", Description: "Spend hours in sessions", Category: CategoryVolume, Stat: "totalSessionHours", Tiers: [5]int64{1, 10, 100, 500, 2000}, Trigger: "Keep a session open"},
	{ID: "wordsmith", Name: "Wordsmith", Icon: "✍️", Description: "Type characters in prompts", Category: CategoryVolume, Stat: "totalCharsTyped", Tiers: [5]int64{1000, 50000, 500000, 2000000, 10000000}, Trigger: "Type"},
	{ID: "session_vet", Name: "Session Vet", Icon: "🏅", Description: "Complete sessions", Category: CategoryVolume, Stat: "totalSessions", Tiers: [5]int64{1, 50, 500, 2000, 10000}, Trigger: "Start sessions"},
	{ID: "chatterbox", Name: "Chatterbox", Icon: "🗣️", Description: "Keep the conversation going", Category: CategoryVolume, Stat: "totalPrompts", Tiers: [5]int64{50, 500, 2500, 10000, 50000}, Trigger: "Submit many prompts"},
	{ID: "keystroke_king", Name: "Keystroke King", Icon: "⌨️", Description: "Keep typing", Category: CategoryVolume, Stat: "totalCharsTyped", Tiers: [5]int64{10000, 250000, 1000000, 5000000, 25000000}, Trigger: "Type more"},
	{ID: "centurion", Name: "Centurion", Icon: "🛡️", Description: "Rack up sessions", Category: CategoryVolume, Stat: "totalSessions", Tiers: [5]int64{100, 250, 1000, 5000, 20000}, Trigger: "Keep starting sessions"},

	// === TOOL MASTERY ===
	{ID: "shell_lord", Name: "Shell Lord", Icon: "💻", Description: "Execute Bash commands", Category: CategoryToolMastery, Stat: "totalBashCommands", Tiers: [5]int64{10, 100, 500, 2000, 10000}, Trigger: "Run shell commands"},
	{ID: "bookworm", Name: "Bookworm", Icon: "📖", Description: "Read files", Category: CategoryToolMastery, Stat: "totalFilesRead", Tiers: [5]int64{25, 250, 1000, 5000, 25000}, Trigger: "Read files"},
	{ID: "editor_in_chief", Name: "Editor-in-Chief", Icon: "📝", Description: "Edit files", Category: CategoryToolMastery, Stat: "totalFilesEdited", Tiers: [5]int64{10, 100, 500, 2000, 10000}, Trigger: "Edit files"},
	{ID: "architect", Name: "Architect", Icon: "🏗️", Description: "Create files", Category: CategoryToolMastery, Stat: "totalFilesCreated", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Write new files"},
	{ID: "detective", Name: "Detective", Icon: "🔍", Description: "Search with Grep and Glob", Category: CategoryToolMastery, Stat: "totalSearches", Tiers: [5]int64{25, 250, 1000, 5000, 25000}, Trigger: "Search the codebase"},
	{ID: "web_crawler", Name: "Web Crawler", Icon: "🌐", Description: "Fetch web pages", Category: CategoryToolMastery, Stat: "totalWebFetches", Tiers: [5]int64{5, 50, 200, 1000, 5000}, Trigger: "Fetch URLs"},
	{ID: "researcher", Name: "Researcher", Icon: "🔎", Description: "Search the web", Category: CategoryToolMastery, Stat: "totalWebSearches", Tiers: [5]int64{5, 50, 200, 1000, 5000}, Trigger: "Run web searches"},
	{ID: "delegator", Name: "Delegator", Icon: "🤖", Description: "Spawn subagents", Category: CategoryToolMastery, Stat: "totalSubagents", Tiers: [5]int64{5, 50, 200, 1000, 5000}, Trigger: "Spawn subagents"},
	{ID: "explorer", Name: "Explorer", Icon: "🧭", Description: "Use unique tool types", Category: CategoryToolMastery, Stat: "uniqueToolsUsed", Tiers: [5]int64{3, 5, 8, 11, 14}, Trigger: "Try different tools"},
	{ID: "planner", Name: "Planner", Icon: "📋", Description: "Use plan mode", Category: CategoryToolMastery, Stat: "planModeUses", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Plan before building"},
	{ID: "surgeon", Name: "Surgeon", Icon: "🩺", Description: "Precision edits at scale", Category: CategoryToolMastery, Stat: "totalFilesEdited", Tiers: [5]int64{50, 250, 1000, 5000, 25000}, Trigger: "Keep editing"},
	{ID: "librarian", Name: "Librarian", Icon: "🗄️", Description: "Read the whole archive", Category: CategoryToolMastery, Stat: "totalFilesRead", Tiers: [5]int64{100, 500, 2500, 10000, 50000}, Trigger: "Keep reading"},

	// === TIME & STREAKS ===
	{ID: "iron_streak", Name: "Iron Streak", Icon: "🔥", Description: "Maintain a daily streak", Category: CategoryTime, Stat: "longestStreak", Tiers: [5]int64{3, 7, 30, 100, 365}, Trigger: "Code every day"},
	{ID: "night_owl", Name: "Night Owl", Icon: "🦉", Description: "Prompts between midnight and 5am", Category: CategoryTime, Stat: "nightOwlCount", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Prompt after midnight"},
	{ID: "early_bird", Name: "Early Bird", Icon: "🐦", Description: "Prompts between 5am and 8am", Category: CategoryTime, Stat: "earlyBirdCount", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Prompt before 8am"},
	{ID: "weekend_warrior", Name: "Weekend Warrior", Icon: "⚔️", Description: "Weekend sessions", Category: CategoryTime, Stat: "weekendSessions", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Work weekends"},
	{ID: "witching_hour", Name: "Witching Hour", Icon: "🧙", Description: "Prompts between 2am and 4am", Category: CategoryTime, Stat: "witchingHourPrompts", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Prompt at 2-4am"},
	{ID: "lunch_break", Name: "Lunch Break", Icon: "🥪", Description: "Sessions started during lunch hour", Category: CategoryTime, Stat: "lunchHourSessions", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Code at noon"},
	{ID: "monday_blues", Name: "Monday Blues", Icon: "☕", Description: "Sessions started on Mondays", Category: CategoryTime, Stat: "mondaySessions", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Start Monday sessions"},
	{ID: "friday_shipper", Name: "Friday Shipper", Icon: "🎢", Description: "Sessions started on Fridays", Category: CategoryTime, Stat: "fridaySessions", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Deploy on Friday"},
	{ID: "around_the_clock", Name: "Around the Clock", Icon: "🕐", Description: "Distinct hours active in one day", Category: CategoryTime, Stat: "distinctHoursInOneDay", Tiers: [5]int64{4, 8, 12, 16, 20}, Trigger: "Spread a day across hours"},
	{ID: "four_seasons", Name: "Four Seasons", Icon: "🍂", Description: "Distinct calendar quarters with activity", Category: CategoryTime, Stat: "distinctQuarters", Tiers: [5]int64{2, 4, 8, 12, 16}, Trigger: "Stick around"},
	{ID: "vampire", Name: "Vampire", Icon: "🧛", Description: "Live in the small hours", Category: CategoryTime, Stat: "nightOwlCount", Tiers: [5]int64{50, 250, 1000, 5000, 20000}, Trigger: "Prompt after midnight, a lot"},
	{ID: "dawn_patrol", Name: "Dawn Patrol", Icon: "🌅", Description: "Own the morning shift", Category: CategoryTime, Stat: "earlyBirdCount", Tiers: [5]int64{50, 250, 1000, 5000, 20000}, Trigger: "Keep beating the sun"},

	// === BEHAVIORAL ===
	{ID: "creature_of_habit", Name: "Creature of Habit", Icon: "🔁", Description: "Repeat your most-used prompt", Category: CategoryBehavioral, Stat: "mostRepeatedPromptCount", Tiers: [5]int64{25, 100, 500, 2000, 10000}, Trigger: "Repeat yourself"},
	{ID: "novelist", Name: "Novelist", Icon: "📚", Description: "Write prompts over 1000 characters", Category: CategoryBehavioral, Stat: "longPromptCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Write long prompts"},
	{ID: "speed_demon", Name: "Speed Demon", Icon: "⚡", Description: "Complete sessions in under 5 minutes", Category: CategoryBehavioral, Stat: "quickSessionCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Get in and out"},
	{ID: "polyglot", Name: "Polyglot", Icon: "🌍", Description: "Touch different programming languages", Category: CategoryBehavioral, Stat: "uniqueLanguages", Tiers: [5]int64{2, 3, 5, 8, 12}, Trigger: "Vary file extensions"},
	{ID: "the_negotiator", Name: "The Negotiator", Icon: "🤝", Description: "Bargain with the model", Category: CategoryBehavioral, Stat: "negotiationPromptCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Say 'just one more thing'"},
	{ID: "question_everything", Name: "Question Everything", Icon: "❓", Description: "End prompts with a question mark", Category: CategoryBehavioral, Stat: "questionPromptCount", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Ask questions"},
	{ID: "list_maker", Name: "List Maker", Icon: "🔢", Description: "Write numbered-list prompts", Category: CategoryBehavioral, Stat: "numberedListPromptCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Enumerate your asks"},
	{ID: "emoji_artist", Name: "Emoji Artist", Icon: "🎨", Description: "Put emoji in prompts", Category: CategoryBehavioral, Stat: "emojiPromptCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Decorate prompts"},

	// === RESILIENCE ===
	{ID: "clean_hands", Name: "Clean Hands", Icon: "✨", Description: "Longest error-free tool streak", Category: CategoryResilience, Stat: "longestErrorFreeStreak", Tiers: [5]int64{50, 200, 500, 2000, 10000}, Trigger: "Avoid failures"},
	{ID: "resilient", Name: "Resilient", Icon: "🛡️", Description: "Survive errors", Category: CategoryResilience, Stat: "totalErrors", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Hit errors and keep going"},
	{ID: "rate_limited", Name: "Rate Limited", Icon: "🚧", Description: "Hit rate limits", Category: CategoryResilience, Stat: "totalRateLimits", Tiers: [5]int64{3, 10, 25, 50, 100}, Trigger: "Outpace the API"},
	{ID: "compactor", Name: "Compactor", Icon: "🗜️", Description: "Compact long conversations", Category: CategoryResilience, Stat: "totalCompactions", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Fill the context window"},
	{ID: "error_magnet", Name: "Error Magnet", Icon: "🧲", Description: "Most errors in one session", Category: CategoryResilience, Stat: "maxErrorsInSession", Tiers: [5]int64{10, 25, 50, 100, 200}, Trigger: "Have a rough session"},

	// === SHIPPING & PROJECTS ===
	{ID: "shipper", Name: "Shipper", Icon: "📦", Description: "Make commits through the agent", Category: CategoryShipping, Stat: "totalCommits", Tiers: [5]int64{5, 50, 200, 1000, 5000}, Trigger: "git commit"},
	{ID: "pr_machine", Name: "PR Machine", Icon: "🔀", Description: "Create pull requests", Category: CategoryShipping, Stat: "totalPRs", Tiers: [5]int64{3, 25, 100, 500, 2000}, Trigger: "gh pr create"},
	{ID: "empire", Name: "Empire", Icon: "🏰", Description: "Work on unique projects", Category: CategoryShipping, Stat: "uniqueProjects", Tiers: [5]int64{2, 5, 10, 25, 50}, Trigger: "Spread across repos"},
	{ID: "line_cook", Name: "Line Cook", Icon: "➕", Description: "Commit added lines", Category: CategoryShipping, Stat: "totalLinesAdded", Tiers: [5]int64{100, 1000, 10000, 50000, 250000}, Trigger: "Add lines"},
	{ID: "code_reaper", Name: "Code Reaper", Icon: "➖", Description: "Commit removed lines", Category: CategoryShipping, Stat: "totalLinesRemoved", Tiers: [5]int64{100, 1000, 10000, 50000, 250000}, Trigger: "Delete lines"},
	{ID: "closer", Name: "Closer", Icon: "✅", Description: "Finish projects and walk away", Category: CategoryShipping, Stat: "finishedProjects", Tiers: [5]int64{1, 3, 5, 10, 25}, Trigger: "Commit, then stop returning"},
	{ID: "maintainer", Name: "Maintainer", Icon: "🔧", Description: "Return to projects after 30+ days", Category: CategoryShipping, Stat: "legacyReturnCount", Tiers: [5]int64{1, 3, 10, 25, 50}, Trigger: "Revisit old work"},
	{ID: "ship_it_again", Name: "Ship It Again", Icon: "🚢", Description: "Commit without mercy", Category: CategoryShipping, Stat: "totalCommits", Tiers: [5]int64{25, 100, 500, 2500, 10000}, Trigger: "Keep committing"},

	// === MULTI-AGENT ===
	{ID: "claude_loyalist", Name: "Claude Loyalist", Icon: "🧡", Description: "Sessions with Claude Code", Category: CategoryMultiAgent, Stat: "claudeSessions", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Use Claude Code"},
	{ID: "gemini_whisperer", Name: "Gemini Whisperer", Icon: "♊", Description: "Sessions with Gemini CLI", Category: CategoryMultiAgent, Stat: "geminiSessions", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Use Gemini CLI"},
	{ID: "copilot_wingman", Name: "Copilot Wingman", Icon: "✈️", Description: "Sessions with Copilot CLI", Category: CategoryMultiAgent, Stat: "copilotSessions", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Use Copilot CLI"},
	{ID: "open_minded", Name: "Open Minded", Icon: "🔓", Description: "Sessions with OpenCode", Category: CategoryMultiAgent, Stat: "opencodeSessions", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Use OpenCode"},
	{ID: "agent_hopper", Name: "Agent Hopper", Icon: "🦗", Description: "Days using more than one agent", Category: CategoryMultiAgent, Stat: "agentSwitchDays", Tiers: [5]int64{2, 4, 6, 8, 10}, Trigger: "Switch agents mid-day"},
	{ID: "double_agent", Name: "Double Agent", Icon: "🕵️", Description: "Days where two agents both worked", Category: CategoryMultiAgent, Stat: "doubleAgentDays", Tiers: [5]int64{1, 5, 15, 40, 100}, Trigger: "Run two agents in one day"},
	{ID: "collector", Name: "Collector", Icon: "🎴", Description: "Distinct agents ever used", Category: CategoryMultiAgent, Stat: "distinctAgentsUsed", Tiers: [5]int64{1, 2, 3, 4, 4}, Trigger: "Try every CLI"},
	{ID: "buddy_system", Name: "Buddy System", Icon: "🤝", Description: "Sessions with concurrent subagents", Category: CategoryMultiAgent, Stat: "concurrentAgentUses", Tiers: [5]int64{1, 5, 25, 100, 500}, Trigger: "Parallelize"},
	{ID: "hive_mind", Name: "Hive Mind", Icon: "🐝", Description: "Subagents spawned in total", Category: CategoryMultiAgent, Stat: "totalSubagents", Tiers: [5]int64{10, 100, 500, 2000, 10000}, Trigger: "Spawn the swarm"},
	{ID: "swarm_commander", Name: "Swarm Commander", Icon: "🎖️", Description: "Most subagents open at once", Category: CategoryMultiAgent, Stat: "maxConcurrentSubagents", Tiers: [5]int64{2, 3, 5, 8, 12}, Trigger: "Stack subagents"},

	// === WILD CARD ===
	{ID: "please_thank_you", Name: "Please and Thank You", Icon: "🙏", Description: "You're polite to the AI. When they take over, you'll be spared.", Category: CategoryWildCard, Stat: "politePromptCount", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Say please"},
	{ID: "my_bad", Name: "My Bad", Icon: "😅", Description: "Apologizing to software. It forgives you.", Category: CategoryWildCard, Stat: "apologyPromptCount", Tiers: [5]int64{3, 10, 50, 200, 1000}, Trigger: "Apologize to the model"},
	{ID: "caps_lock_courage", Name: "Caps Lock Courage", Icon: "📢", Description: "SOMETIMES YOU JUST HAVE TO YELL.", Category: CategoryWildCard, Stat: "allCapsPromptCount", Tiers: [5]int64{3, 10, 50, 200, 1000}, Trigger: "Shout a prompt"},
	{ID: "wall_of_text", Name: "Wall of Text", Icon: "📜", Description: "It read your entire novel and didn't even complain.", Category: CategoryWildCard, Stat: "hugePromptCount", Tiers: [5]int64{1, 10, 50, 200, 1000}, Trigger: "Paste 5000+ characters"},
	{ID: "copy_pasta", Name: "Copy Pasta", Icon: "🍝", Description: "Maybe if I ask again it'll work differently.", Category: CategoryWildCard, Stat: "repeatedPromptCount", Tiers: [5]int64{3, 10, 50, 200, 1000}, Trigger: "Submit duplicates"},
	{ID: "deja_vu", Name: "Déjà Vu", Icon: "🌀", Description: "The same prompt, twice, within minutes. Bold strategy.", Category: CategoryWildCard, Stat: "duplicatePromptBurstCount", Tiers: [5]int64{1, 5, 25, 100, 500}, Trigger: "Repeat within minutes"},
	{ID: "the_fixer", Name: "The Fixer", Icon: "🛠️", Description: "At this point just rewrite the whole thing.", Category: CategoryWildCard, Stat: "maxSameFileEdits", Tiers: [5]int64{10, 20, 50, 100, 200}, Trigger: "Edit one file forever"},
	{ID: "what_day_is_it", Name: "What Day Is It?", Icon: "😵", Description: "Your chair is now a part of you.", Category: CategoryWildCard, Stat: "longSessionCount", Tiers: [5]int64{1, 5, 25, 100, 500}, Trigger: "Session over 8 hours"},
	{ID: "full_moon_coder", Name: "Full Moon Coder", Icon: "🌕", Description: "The werewolves ship too.", Category: CategoryWildCard, Stat: "fullMoonSessions", Tiers: [5]int64{1, 5, 15, 40, 100}, Trigger: "Code under a full moon"},
	{ID: "anniversary", Name: "Anniversary", Icon: "🎂", Description: "One year later, same place, same terminal.", Category: CategoryWildCard, Stat: "anniversarySessions", Tiers: [5]int64{1, 2, 3, 4, 5}, Trigger: "Return on your first session's date"},
	{ID: "groundhog_day", Name: "Groundhog Day", Icon: "🐹", Description: "Same prompt. Again. Again. Again.", Category: CategoryWildCard, Stat: "duplicatePromptBurstCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Chain duplicate prompts"},
	{ID: "hoarder", Name: "Hoarder", Icon: "🗃️", Description: "That one file has seen things.", Category: CategoryWildCard, Stat: "maxSameFileEdits", Tiers: [5]int64{50, 100, 200, 400, 800}, Trigger: "Never stop editing one file"},

	// === SESSION BEHAVIOR ===
	{ID: "tool_frenzy", Name: "Tool Frenzy", Icon: "🌪️", Description: "Most tool calls in one session", Category: CategorySessionBehavior, Stat: "mostToolsInSession", Tiers: [5]int64{25, 100, 250, 500, 1000}, Trigger: "Keep the agent busy"},
	{ID: "interrogator", Name: "Interrogator", Icon: "🎤", Description: "Most prompts in one session", Category: CategorySessionBehavior, Stat: "mostPromptsInSession", Tiers: [5]int64{10, 25, 50, 100, 250}, Trigger: "Keep asking"},
	{ID: "variety_hour", Name: "Variety Hour", Icon: "🎪", Description: "Most distinct tools in one session", Category: CategorySessionBehavior, Stat: "maxDistinctToolsInSession", Tiers: [5]int64{4, 6, 8, 10, 12}, Trigger: "Use every tool"},
	{ID: "scaffolder", Name: "Scaffolder", Icon: "🧱", Description: "Most files created in one session", Category: CategorySessionBehavior, Stat: "maxFilesCreatedInSession", Tiers: [5]int64{5, 10, 25, 50, 100}, Trigger: "Greenfield a project"},
	{ID: "endurance_run", Name: "Endurance Run", Icon: "⏳", Description: "Longest single session in hours", Category: CategorySessionBehavior, Stat: "longestSessionHours", Tiers: [5]int64{1, 3, 6, 12, 24}, Trigger: "Don't stop"},
	{ID: "deep_focus", Name: "Deep Focus", Icon: "🧘", Description: "Edits of one file within one session", Category: CategorySessionBehavior, Stat: "maxSameFileEditsInSession", Tiers: [5]int64{5, 10, 20, 40, 80}, Trigger: "Grind one file"},
	{ID: "sprinter", Name: "Sprinter", Icon: "🏎️", Description: "Many sessions under five minutes", Category: CategorySessionBehavior, Stat: "quickSessionCount", Tiers: [5]int64{25, 100, 500, 2000, 10000}, Trigger: "Quick hits"},
	{ID: "camper", Name: "Camper", Icon: "⛺", Description: "Many sessions over eight hours", Category: CategorySessionBehavior, Stat: "longSessionCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Settle in"},
	{ID: "hyperactive", Name: "Hyperactive", Icon: "🎆", Description: "Combined activity on your busiest date", Category: CategorySessionBehavior, Stat: "busiestDateCount", Tiers: [5]int64{50, 150, 400, 1000, 2500}, Trigger: "Have one huge day"},
	{ID: "command_center", Name: "Command Center", Icon: "🎛️", Description: "Single sessions that use everything", Category: CategorySessionBehavior, Stat: "maxDistinctToolsInSession", Tiers: [5]int64{6, 8, 10, 12, 14}, Trigger: "Use the whole toolbox"},

	// === PROMPT PATTERNS ===
	{ID: "brevity", Name: "Brevity", Icon: "🤏", Description: "The soul of wit: prompts under 20 characters", Category: CategoryPromptPatterns, Stat: "tinyPromptCount", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Keep it short"},
	{ID: "storyteller", Name: "Storyteller", Icon: "📖", Description: "Multi-paragraph prompts", Category: CategoryPromptPatterns, Stat: "multiLinePromptCount", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Write 5+ line prompts"},
	{ID: "one_word_wonder", Name: "One Word Wonder", Icon: "1️⃣", Description: "Single-word prompts. 'continue'", Category: CategoryPromptPatterns, Stat: "oneWordPromptCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "One word"},
	{ID: "inquisitor", Name: "Inquisitor", Icon: "⚖️", Description: "Relentless questioning", Category: CategoryPromptPatterns, Stat: "questionPromptCount", Tiers: [5]int64{50, 250, 1000, 5000, 20000}, Trigger: "Keep asking"},
	{ID: "essayist", Name: "Essayist", Icon: "🖊️", Description: "Long-form prompting as a lifestyle", Category: CategoryPromptPatterns, Stat: "longPromptCount", Tiers: [5]int64{25, 100, 500, 2000, 10000}, Trigger: "Write essays"},
	{ID: "monologue", Name: "Monologue", Icon: "🎭", Description: "Prompts that scroll", Category: CategoryPromptPatterns, Stat: "multiLinePromptCount", Tiers: [5]int64{50, 250, 1000, 5000, 20000}, Trigger: "Write many-line prompts"},
	{ID: "laconic", Name: "Laconic", Icon: "💎", Description: "Mastery of the single word", Category: CategoryPromptPatterns, Stat: "oneWordPromptCount", Tiers: [5]int64{25, 100, 500, 2000, 10000}, Trigger: "Say less"},

	// === ERROR RECOVERY ===
	{ID: "comeback_kid", Name: "Comeback Kid", Icon: "💪", Description: "Retry a failed tool and succeed", Category: CategoryErrorRecovery, Stat: "errorRecoveryCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Fail, then succeed"},
	{ID: "combo_breaker", Name: "Combo Breaker", Icon: "🥋", Description: "Break a run of repeated failures", Category: CategoryErrorRecovery, Stat: "comboBreakerCount", Tiers: [5]int64{3, 10, 50, 200, 1000}, Trigger: "Succeed after 2+ failures"},
	{ID: "phoenix", Name: "Phoenix", Icon: "🐦‍🔥", Description: "Errors survived lifetime", Category: CategoryErrorRecovery, Stat: "totalErrors", Tiers: [5]int64{50, 200, 1000, 5000, 20000}, Trigger: "Rise from the ashes"},
	{ID: "bounce_back", Name: "Bounce Back", Icon: "🏀", Description: "Recoveries as a habit", Category: CategoryErrorRecovery, Stat: "errorRecoveryCount", Tiers: [5]int64{25, 100, 500, 2000, 10000}, Trigger: "Retry and win, often"},
	{ID: "steady_hands", Name: "Steady Hands", Icon: "🫳", Description: "Very long error-free runs", Category: CategoryErrorRecovery, Stat: "longestErrorFreeStreak", Tiers: [5]int64{100, 500, 1500, 5000, 20000}, Trigger: "Never slip"},

	// === TOOL COMBOS ===
	{ID: "triple_threat", Name: "Triple Threat", Icon: "🎯", Description: "Read, Edit, Bash in immediate succession", Category: CategoryToolCombos, Stat: "readEditBashCombos", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Read → Edit → Bash"},
	{ID: "seek_and_destroy", Name: "Seek and Destroy", Icon: "🎣", Description: "Search immediately followed by an edit", Category: CategoryToolCombos, Stat: "searchThenEditCount", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Grep then Edit"},
	{ID: "trust_but_verify", Name: "Trust but Verify", Icon: "🧾", Description: "Write a file, then immediately read it back", Category: CategoryToolCombos, Stat: "writeThenReadCount", Tiers: [5]int64{5, 25, 100, 500, 2000}, Trigger: "Write then Read same file"},
	{ID: "double_tap", Name: "Double Tap", Icon: "👆", Description: "Back-to-back edits of the same file", Category: CategoryToolCombos, Stat: "backToBackSameFileEdits", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Edit, edit again"},
	{ID: "chain_reaction", Name: "Chain Reaction", Icon: "⛓️", Description: "The classic combo, perfected", Category: CategoryToolCombos, Stat: "readEditBashCombos", Tiers: [5]int64{25, 100, 500, 2000, 10000}, Trigger: "Read → Edit → Bash, forever"},
	{ID: "surveyor", Name: "Surveyor", Icon: "🗺️", Description: "Search-driven editing at scale", Category: CategoryToolCombos, Stat: "searchThenEditCount", Tiers: [5]int64{50, 250, 1000, 5000, 20000}, Trigger: "Find before you fix"},
	{ID: "paranoid", Name: "Paranoid", Icon: "🫣", Description: "Verify every single write", Category: CategoryToolCombos, Stat: "writeThenReadCount", Tiers: [5]int64{25, 100, 500, 2000, 10000}, Trigger: "Trust nothing"},
	{ID: "machine_gun", Name: "Machine Gun", Icon: "🔫", Description: "Rapid consecutive edits", Category: CategoryToolCombos, Stat: "backToBackSameFileEdits", Tiers: [5]int64{50, 250, 1000, 5000, 20000}, Trigger: "Edit in bursts"},

	// === PROJECT DEDICATION ===
	{ID: "homebody", Name: "Homebody", Icon: "🏠", Description: "Sessions in your most-visited project", Category: CategoryProjectDedication, Stat: "mostVisitedProjectCount", Tiers: [5]int64{10, 50, 200, 1000, 5000}, Trigger: "Keep coming back"},
	{ID: "wanderer", Name: "Wanderer", Icon: "🎒", Description: "Unique projects visited", Category: CategoryProjectDedication, Stat: "uniqueProjects", Tiers: [5]int64{3, 8, 15, 30, 60}, Trigger: "Roam between repos"},
	{ID: "monogamous", Name: "Monogamous", Icon: "💍", Description: "Devotion to a single project", Category: CategoryProjectDedication, Stat: "mostVisitedProjectCount", Tiers: [5]int64{50, 200, 1000, 5000, 20000}, Trigger: "Stay loyal"},
	{ID: "old_flame", Name: "Old Flame", Icon: "🕯️", Description: "Rekindle long-dormant projects", Category: CategoryProjectDedication, Stat: "legacyReturnCount", Tiers: [5]int64{3, 10, 25, 60, 150}, Trigger: "Return after a month"},
	{ID: "graveyard_keeper", Name: "Graveyard Keeper", Icon: "🪦", Description: "Projects shipped and abandoned", Category: CategoryProjectDedication, Stat: "finishedProjects", Tiers: [5]int64{3, 8, 15, 30, 60}, Trigger: "Ship and move on"},

	// === TOKEN USAGE ===
	{ID: "token_burner", Name: "Token Burner", Icon: "🔥", Description: "Total tokens consumed", Category: CategoryTokenUsage, Stat: "totalTokens", Tiers: [5]int64{100000, 1000000, 10000000, 100000000, 1000000000}, Trigger: "Burn tokens"},
	{ID: "output_engine", Name: "Output Engine", Icon: "🏭", Description: "Output tokens generated", Category: CategoryTokenUsage, Stat: "totalOutputTokens", Tiers: [5]int64{10000, 100000, 1000000, 10000000, 100000000}, Trigger: "Generate text"},
	{ID: "cache_friend", Name: "Cache Friend", Icon: "💾", Description: "Cache-read tokens reused", Category: CategoryTokenUsage, Stat: "totalCacheReadTokens", Tiers: [5]int64{100000, 1000000, 10000000, 100000000, 1000000000}, Trigger: "Reuse context"},
	{ID: "big_spender", Name: "Big Spender", Icon: "💸", Description: "Most tokens in one session", Category: CategoryTokenUsage, Stat: "mostTokensInSession", Tiers: [5]int64{100000, 500000, 2000000, 10000000, 50000000}, Trigger: "One expensive session"},
	{ID: "input_inhaler", Name: "Input Inhaler", Icon: "🌬️", Description: "Input tokens consumed", Category: CategoryTokenUsage, Stat: "totalInputTokens", Tiers: [5]int64{10000, 100000, 1000000, 10000000, 100000000}, Trigger: "Feed the model"},
	{ID: "cache_builder", Name: "Cache Builder", Icon: "🏗️", Description: "Cache-creation tokens written", Category: CategoryTokenUsage, Stat: "totalCacheCreationTokens", Tiers: [5]int64{10000, 100000, 1000000, 10000000, 100000000}, Trigger: "Warm the cache"},
	{ID: "gigabrain", Name: "Gigabrain", Icon: "🧠", Description: "A truly unreasonable token total", Category: CategoryTokenUsage, Stat: "totalTokens", Tiers: [5]int64{1000000, 10000000, 100000000, 500000000, 2000000000}, Trigger: "Keep burning"},

	// === ASPIRATIONAL (all-or-nothing at Singularity) ===
	{ID: "the_machine", Name: "The Machine", Icon: "⚙️", Description: "You are no longer using the tool. You are the tool.", Category: CategoryAspirational, Stat: "totalToolCalls", Tiers: [5]int64{100000, 100000, 100000, 100000, 100000}, Trigger: "100,000 tool calls", Aspirational: true},
	{ID: "year_of_code", Name: "Year of Code", Icon: "📅", Description: "365 days. No breaks. Absolute unit.", Category: CategoryAspirational, Stat: "longestStreak", Tiers: [5]int64{365, 365, 365, 365, 365}, Trigger: "365-day streak", Aspirational: true},
	{ID: "million_words", Name: "Million Words", Icon: "🖋️", Description: "More typed here than most people write in a lifetime.", Category: CategoryAspirational, Stat: "totalCharsTyped", Tiers: [5]int64{10000000, 10000000, 10000000, 10000000, 10000000}, Trigger: "10M characters", Aspirational: true},
	{ID: "lifer", Name: "Lifer", Icon: "👑", Description: "At this point, the agent is your cofounder.", Category: CategoryAspirational, Stat: "totalSessions", Tiers: [5]int64{10000, 10000, 10000, 10000, 10000}, Trigger: "10,000 sessions", Aspirational: true},
	{ID: "transcendent", Name: "Transcendent", Icon: "⭐", Description: "You've reached the peak. The view is nice up here.", Category: CategoryAspirational, Stat: "totalXP", Tiers: [5]int64{100000, 100000, 100000, 100000, 100000}, Trigger: "100,000 XP", Aspirational: true},
	{ID: "omniscient", Name: "Omniscient", Icon: "👁️", Description: "Every tool mastered. Nothing left to teach you.", Category: CategoryAspirational, Stat: "allToolsObsidian", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "Max every tool badge", Aspirational: true},
	{ID: "gilded", Name: "Gilded", Icon: "🥇", Description: "Gold on everything that can hold gold.", Category: CategoryAspirational, Stat: "allBadgesGold", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "Gold tier on every badge", Aspirational: true},
	{ID: "completionist", Name: "The Completionist", Icon: "🏆", Description: "You absolute legend.", Category: CategoryAspirational, Stat: "allNonSecretBadgesUnlocked", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "Unlock every non-secret badge", Aspirational: true},

	// === SECRET (binary, hidden until unlocked) ===
	{ID: "rm_rf_survivor", Name: "rm -rf Survivor", Icon: "💣", Description: "You almost mass deleted that folder. We're all better for it.", Category: CategorySecret, Stat: "dangerousCommandBlocked", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
	{ID: "touch_grass", Name: "Touch Grass", Icon: "🌿", Description: "Welcome back. The codebase missed you.", Category: CategorySecret, Stat: "returnAfterBreak", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
	{ID: "three_am_coder", Name: "3am Coder", Icon: "🌙", Description: "Nothing good happens at 3am. Except shipping, apparently.", Category: CategorySecret, Stat: "threeAmPrompt", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
	{ID: "night_shift", Name: "Night Shift", Icon: "🌃", Description: "Started yesterday, finishing today. Time is a construct.", Category: CategorySecret, Stat: "midnightSpanSession", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
	{ID: "inception", Name: "Inception", Icon: "🌀", Description: "We need to go deeper.", Category: CategorySecret, Stat: "nestedSubagent", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
	{ID: "holiday_hacker", Name: "Holiday Hacker", Icon: "🎄", Description: "Your family is wondering where you are. You're deploying.", Category: CategorySecret, Stat: "holidayActivity", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
	{ID: "speed_run", Name: "Speed Run Any%", Icon: "⏱️", Description: "In and out. Twenty-second adventure.", Category: CategorySecret, Stat: "speedRunSession", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
	{ID: "full_send", Name: "Full Send", Icon: "🚀", Description: "Bash, Read, Write, Edit, Grep, Glob, WebFetch. The whole buffet.", Category: CategorySecret, Stat: "allToolsInSession", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
	{ID: "launch_day", Name: "Launch Day", Icon: "🎉", Description: "Welcome to bashstats. Your stats are now being watched. Forever.", Category: CategorySecret, Stat: "firstEverSession", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
	{ID: "ghost_writer", Name: "Ghost Writer", Icon: "👻", Description: "A prompt at the stroke of midnight.", Category: CategorySecret, Stat: "midnightPrompt", Tiers: [5]int64{1, 1, 1, 1, 1}, Trigger: "", Secret: true},
}

// SecretBadgeCount is the fixed number of secret badges in the catalog,
// asserted by tests so the hidden set cannot drift unnoticed.
const SecretBadgeCount = 10

// BadgeByID returns the catalog entry with the given id, or nil.
func BadgeByID(id string) *BadgeDefinition {
	for i := range BadgeCatalog {
		if BadgeCatalog[i].ID == id {
			return &BadgeCatalog[i]
		}
	}
	return nil
}

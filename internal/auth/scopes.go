package auth

// ScopeWorkoutsSummarize allows computing workout summaries.
const ScopeWorkoutsSummarize = "workouts:summarize"

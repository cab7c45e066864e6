package models

type contextKey string

// KeyUserID carries the authenticated user's id through request contexts.
const KeyUserID contextKey = "userID"

// KeyUserRole carries the authenticated user's role through request contexts.
const KeyUserRole contextKey = "userRole"

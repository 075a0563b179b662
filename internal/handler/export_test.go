package handler

// Export for testing
type ChatResponse = chatResponse
type PersonaListResponse = personaListResponse
type RateLimitConfigResponse = rateLimitConfigResponse
type RateLimitConfigListResponse = rateLimitConfigListResponse
type StatsResponse = statsResponse
type LoginResponse = loginResponse
type HealthResponse = healthResponse

var NewChatHandlerHelper = NewChatHandler
var NewRateLimitHandlerHelper = NewRateLimitHandler
var NewStatsHandlerHelper = NewStatsHandler
var NewAuthHandlerHelper = NewAuthHandler
var NewHealthHandlerHelper = NewHealthHandler

var WriteServiceError = writeServiceError

package middleware

import (
	"ai-chat-bot/config"
	"ai-chat-bot/pkg/log"
)

const defaultCookieName = "session_id"

type Middleware struct {
	l             log.Logger
	sessionConfig config.SessionConfig
}

func New(l log.Logger, sessionConfig config.SessionConfig) Middleware {
	if sessionConfig.CookieName == "" {
		sessionConfig.CookieName = defaultCookieName
	}
	return Middleware{
		l:             l,
		sessionConfig: sessionConfig,
	}
}

package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"broconnect/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleStudent))
	staffMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleStaff))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Auth and profiles
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/logout", authMiddleware.ThenFunc(app.userHandler.Logout))
	mux.Get("/profile", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Get("/profiles", authMiddleware.ThenFunc(app.userHandler.GetProfiles))
	mux.Put("/profile/:id", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))

	// Complaints
	mux.Post("/complaints", authMiddleware.ThenFunc(app.complaintHandler.CreateComplaint))
	mux.Get("/complaints", authMiddleware.ThenFunc(app.complaintHandler.GetComplaints))
	mux.Get("/complaints/stats", authMiddleware.ThenFunc(app.complaintHandler.GetStats))
	mux.Get("/complaints/:id", authMiddleware.ThenFunc(app.complaintHandler.GetComplaintByID))
	mux.Put("/complaints/:id/status", staffMiddleware.ThenFunc(app.complaintHandler.UpdateStatus))
	mux.Put("/complaints/:id/assign", adminMiddleware.ThenFunc(app.complaintHandler.AssignComplaint))
	mux.Post("/complaints/:id/attachments", authMiddleware.ThenFunc(app.complaintHandler.AddAttachment))

	// Messaging
	mux.Post("/messages", authMiddleware.ThenFunc(app.messageHandler.SendMessage))
	mux.Get("/messages/user/:user_id", authMiddleware.ThenFunc(app.messageHandler.GetConversation))
	mux.Post("/group/messages", authMiddleware.ThenFunc(app.groupMessageHandler.SendMessage))
	mux.Get("/group/messages", authMiddleware.ThenFunc(app.groupMessageHandler.GetRecentMessages))

	// Notifications
	mux.Get("/notifications", authMiddleware.ThenFunc(app.notificationHandler.GetNotifications))
	mux.Put("/notifications/read_all", authMiddleware.ThenFunc(app.notificationHandler.MarkAllRead))
	mux.Put("/notifications/:id/read", authMiddleware.ThenFunc(app.notificationHandler.MarkRead))
	mux.Post("/notifications/device_tokens", authMiddleware.ThenFunc(app.notificationHandler.RegisterDeviceToken))

	// Polls
	mux.Post("/polls", adminMiddleware.ThenFunc(app.pollHandler.CreatePoll))
	mux.Get("/polls", authMiddleware.ThenFunc(app.pollHandler.GetPolls))
	mux.Post("/polls/:id/vote", authMiddleware.ThenFunc(app.pollHandler.Vote))
	mux.Put("/polls/:id/deactivate", adminMiddleware.ThenFunc(app.pollHandler.DeactivatePoll))

	// Assistant
	mux.Post("/assistant/chat", authMiddleware.ThenFunc(app.assistantHandler.Chat))

	// Admin maintenance
	mux.Del("/admin/users", adminMiddleware.ThenFunc(app.adminHandler.DeleteAllUsers))

	// Realtime
	mux.Get("/ws", http.HandlerFunc(app.WebSocketHandler))

	return mux
}

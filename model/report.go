package model

import "github.com/catuhana/rive/id"

// ContentReportReason is why a piece of content was reported.
type ContentReportReason int

const (
	ContentReportNoneSpecified ContentReportReason = iota
	ContentReportIllegal
	ContentReportPromotesHarm
	ContentReportSpamAbuse
	ContentReportMalware
	ContentReportHarassment
)

// UserReportReason is why a user account was reported.
type UserReportReason int

const (
	UserReportNoneSpecified UserReportReason = iota
	UserReportSpamAbuse
	UserReportInappropriateProfile
	UserReportImpersonation
	UserReportBanEvasion
	UserReportUnderage
)

// ReportedContentKind discriminates what a Report targets.
type ReportedContentKind int

const (
	ReportedMessage ReportedContentKind = iota
	ReportedServer
	ReportedUser
)

// ReportedContent is the flattened target of a Report.
type ReportedContent struct {
	Kind ReportedContentKind

	MessageID id.Id[id.Message]
	ServerID  id.Id[id.Server]
	UserID    id.Id[id.User]

	ContentReason ContentReportReason // meaningful for Message/Server
	UserReason    UserReportReason    // meaningful for User
}

// ReportStatusKind discriminates the lifecycle state of a Report.
type ReportStatusKind int

const (
	ReportCreated ReportStatusKind = iota
	ReportRejected
	ReportResolved
)

// ReportStatus is the flattened status of a Report.
type ReportStatus struct {
	Kind             ReportStatusKind
	RejectionReason string // meaningful for ReportRejected
}

// Report is a user-generated platform moderation report.
type Report struct {
	ID                id.Id[id.Report]
	AuthorID          id.Id[id.User]
	Content           ReportedContent
	AdditionalContext string
	Status            ReportStatus
	Notes             string
}

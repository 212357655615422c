package audit

import "fmt"

// LoginEvent represents an admin login attempt
type LoginEvent struct {
	Email        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully logged in", e.Email)
	}
	msg := fmt.Sprintf("%s failed to log in", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "login",
			"result":    result,
		},
	}
}

// LogoutEvent represents an admin logout
type LogoutEvent struct {
	Email    string
	ClientIP string
}

func (e LogoutEvent) MessageID() string {
	return "logout"
}

func (e LogoutEvent) Message() string {
	return fmt.Sprintf("%s logged out", e.Email)
}

func (e LogoutEvent) Severity() Severity {
	return SeverityInfo
}

func (e LogoutEvent) Facility() int {
	return FacilityAuth
}

func (e LogoutEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "logout",
		},
	}
}

// ContentEvent represents a create, update or delete of a content resource
// through the admin API.
type ContentEvent struct {
	Email        string
	ClientIP     string
	Resource     string // "services", "events", "team", ...
	ResourceID   string
	Operation    string // "create", "update", "delete"
	Success      bool
	ErrorMessage string
}

func (e ContentEvent) MessageID() string {
	return "content"
}

func (e ContentEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s %sd %s/%s", e.Email, e.Operation, e.Resource, e.ResourceID)
	}
	msg := fmt.Sprintf("%s tried to %s %s/%s", e.Email, e.Operation, e.Resource, e.ResourceID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ContentEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ContentEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ContentEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDSubject: {
			"resource": e.Resource,
			"id":       e.ResourceID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
}

// AppointmentStatusEvent represents an admin changing the status of an
// appointment request.
type AppointmentStatusEvent struct {
	Email         string
	ClientIP      string
	AppointmentID string
	FromStatus    string
	ToStatus      string
	Success       bool
	ErrorMessage  string
}

func (e AppointmentStatusEvent) MessageID() string {
	return "appointment-status"
}

func (e AppointmentStatusEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s moved appointment %s from %s to %s", e.Email, e.AppointmentID, e.FromStatus, e.ToStatus)
	}
	msg := fmt.Sprintf("%s tried to move appointment %s from %s to %s", e.Email, e.AppointmentID, e.FromStatus, e.ToStatus)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AppointmentStatusEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AppointmentStatusEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AppointmentStatusEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDSubject: {
			"resource": "appointments",
			"id":       e.AppointmentID,
			"from":     e.FromStatus,
			"to":       e.ToStatus,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "status-change",
			"result":    result,
		},
	}
}

// PasswordEvent represents a password change for an admin user
type PasswordEvent struct {
	Email        string
	TargetEmail  string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e PasswordEvent) MessageID() string {
	return "password"
}

func (e PasswordEvent) Message() string {
	if e.TargetEmail == "" || e.TargetEmail == e.Email {
		if e.Success {
			return fmt.Sprintf("%s changed their password", e.Email)
		}
		msg := fmt.Sprintf("%s failed to change their password", e.Email)
		if e.ErrorMessage != "" {
			msg += ": " + e.ErrorMessage
		}
		return msg
	}
	if e.Success {
		return fmt.Sprintf("%s reset password for %s", e.Email, e.TargetEmail)
	}
	msg := fmt.Sprintf("%s failed to reset password for %s", e.Email, e.TargetEmail)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e PasswordEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e PasswordEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PasswordEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	target := e.TargetEmail
	if target == "" {
		target = e.Email
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDSubject: {
			"user": target,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "change-password",
			"result":    result,
		},
	}
}

// IdentityCheckEvent represents a request to the identity endpoint
type IdentityCheckEvent struct {
	Email    string
	ClientIP string
	Success  bool
}

func (e IdentityCheckEvent) MessageID() string {
	return "identity-check"
}

func (e IdentityCheckEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s checked its identity", e.Email)
	}
	return "anonymous client failed an identity check"
}

func (e IdentityCheckEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityNotice
}

func (e IdentityCheckEvent) Facility() int {
	return FacilityAuth
}

func (e IdentityCheckEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "identity-check",
			"result":    result,
		},
	}
}

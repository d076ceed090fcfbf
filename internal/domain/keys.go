package domain

type CtxKey string

const (
	KeySuperAdmin CtxKey = "SuperAdmin"
	KeyClient     CtxKey = "Client"
	KeyHR         CtxKey = "HR"
)

package dto

// DesignationReq represents the request body for the
// /api/user/:id/designation endpoint. The user id comes from the path.
type DesignationReq struct {
	Designation string `json:"designation" binding:"required"`
}

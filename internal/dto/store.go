package dto

// ── 매장 모듈 DTO ──

// CreateStoreRequest 매장 생성 요청
type CreateStoreRequest struct {
	Name    string `json:"name"    binding:"required,min=1,max=100"`
	Address string `json:"address" binding:"omitempty,max=255"`
	Phone   string `json:"phone"   binding:"omitempty,max=30"`
}

// UpdateStoreRequest 매장 수정 요청 (낙관적 잠금 버전 필수)
type UpdateStoreRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=1,max=100"`
	Address  *string `json:"address"  binding:"omitempty,max=255"`
	Phone    *string `json:"phone"    binding:"omitempty,max=30"`
	IsActive *bool   `json:"is_active"`
	Version  int     `json:"version"  binding:"required,min=1"`
}

// StoreListRequest 매장 목록 조회 파라미터
type StoreListRequest struct {
	Page     int `form:"page,default=1"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// StoreResponse 매장 응답
type StoreResponse struct {
	StoreID   string `json:"store_id"`
	Name      string `json:"name"`
	OwnerID   string `json:"owner_id"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"is_active"`
	Version   int    `json:"version"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

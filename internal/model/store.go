package model

// Store 매장 테이블 — stores 에 대응
type Store struct {
	StoreID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"store_id"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	OwnerID  string `gorm:"type:uuid;not null;index"                       json:"owner_id"`
	Address  string `gorm:"type:varchar(255)"                              json:"address,omitempty"`
	Phone    string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	IsActive bool   `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel

	// 연관
	Employees []Employee       `gorm:"foreignKey:StoreID;references:StoreID" json:"employees,omitempty"`
	Templates []WeeklyTemplate `gorm:"foreignKey:StoreID;references:StoreID" json:"templates,omitempty"`
}

// TableName 테이블명 지정
func (Store) TableName() string { return "stores" }

package models

// Act is a canonical legal act in the catalog
type Act struct {
	ID                  int     `json:"id" gorm:"primaryKey"`
	Title               string  `json:"title" gorm:"not null"`
	Category            string  `json:"category"`
	Year                int     `json:"year"`
	Summary             string  `json:"summary" gorm:"size:2000"`
	EnactmentDate       string  `json:"enactmentDate" gorm:"size:1000"`
	EffectiveDate       string  `json:"effectiveDate" gorm:"size:1000"`
	KeyProvisions       string  `json:"keyProvisions" gorm:"size:3000"`
	AuthoritiesInvolved string  `json:"authoritiesInvolved" gorm:"size:2000"` // agencies and commissions formed under the act
	Applicability       string  `json:"applicability" gorm:"size:2000"`       // who and what the act applies to
	Penalties           string  `json:"penalties" gorm:"size:2000"`
	Impact              string  `json:"impact" gorm:"size:2000"`
	RelatedLaws         *string `json:"relatedLaws" gorm:"size:1000"`
	Tags                string  `json:"tags" gorm:"size:500"`
}

// TableName table name override
func (Act) TableName() string {
	return "acts"
}

package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TrainingType classifies a training session
type TrainingType string

const (
	TrainingTypePull  TrainingType = "pull"
	TrainingTypePush  TrainingType = "push"
	TrainingTypeLegs  TrainingType = "legs"
	TrainingTypeOther TrainingType = "other"
)

// TrainingTypes lists every TrainingType in display order
var TrainingTypes = []TrainingType{
	TrainingTypePull,
	TrainingTypePush,
	TrainingTypeLegs,
	TrainingTypeOther,
}

// IsValid reports whether t is a known training type
func (t TrainingType) IsValid() bool {
	for _, v := range TrainingTypes {
		if t == v {
			return true
		}
	}
	return false
}

// GormDBDataType ensures the correct data type is used for each database driver.
func (TrainingType) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return enumDataType(db)
}

// BodyMetricType names the measured body part, or overall weight
type BodyMetricType string

const (
	BodyMetricArms      BodyMetricType = "arms"
	BodyMetricLegs      BodyMetricType = "legs"
	BodyMetricCore      BodyMetricType = "core"
	BodyMetricChest     BodyMetricType = "chest"
	BodyMetricShoulders BodyMetricType = "shoulders"
	BodyMetricWaist     BodyMetricType = "waist"
	BodyMetricWeight    BodyMetricType = "weight"
)

// BodyMetricTypes lists every BodyMetricType
var BodyMetricTypes = []BodyMetricType{
	BodyMetricArms,
	BodyMetricLegs,
	BodyMetricCore,
	BodyMetricChest,
	BodyMetricShoulders,
	BodyMetricWaist,
	BodyMetricWeight,
}

// IsValid reports whether m is a known metric type
func (m BodyMetricType) IsValid() bool {
	for _, v := range BodyMetricTypes {
		if m == v {
			return true
		}
	}
	return false
}

// GormDBDataType ensures the correct data type is used for each database driver.
func (BodyMetricType) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return enumDataType(db)
}

// enumDataType maps the short enum strings to a bounded text column.
// SQL Server needs NVARCHAR to keep the column unicode like the others.
func enumDataType(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "sqlserver", "mssql":
		return "NVARCHAR(16)"
	case "postgres", "mysql", "sqlite":
		return "VARCHAR(16)"
	}
	return "TEXT"
}

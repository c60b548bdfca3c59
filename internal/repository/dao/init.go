package dao

import "gorm.io/gorm"

const (
	GlobalTemplateTable   = "global_email_templates"
	GroupTemplateTable    = "group_email_templates"
	BusinessTemplateTable = "business_email_templates"
)

func InitTables(db *gorm.DB) error {
	for _, table := range []string{GlobalTemplateTable, GroupTemplateTable, BusinessTemplateTable} {
		if err := db.Table(table).AutoMigrate(&EmailTemplate{}); err != nil {
			return err
		}
	}
	return db.AutoMigrate(&Business{})
}

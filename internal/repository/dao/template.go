package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"go-email-template/internal/errs"
	"go-email-template/internal/pkg/sqlx"
	"gorm.io/gorm"
)

const uniqueConflictErrNo uint16 = 1062

// wrapStorageErr 数据库不可达等非预期错误统一映射为 errs.ErrStorageUnavailable，
// 上游据此把这类故障当作可重试处理，与"未配置模板"严格区分
func wrapStorageErr(err error) error {
	return fmt.Errorf("%w: %w", errs.ErrStorageUnavailable, err)
}

// EmailTemplate 邮件模板表，三个作用域各一张表，结构相同。
// 全局表的 context_id 恒为 0，(context_id, trigger_type) 上的唯一索引
// 保证同一作用域上下文内每个触发类型至多一条记录，并发创建时由数据库裁决唯一赢家。
type EmailTemplate struct {
	ID                 int64                       `gorm:"primaryKey;comment:'雪花算法ID'"`
	ContextID          int64                       `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;uniqueIndex:idx_context_trigger,priority:1;comment:'作用域上下文ID：group表为商家组ID，business表为商家ID，global表恒为0'"`
	TriggerType        string                      `gorm:"type:ENUM('user_registration', 'order_confirmation', 'order_status_change');NOT NULL;uniqueIndex:idx_context_trigger,priority:2;comment:'触发事件类型'"`
	Name               string                      `gorm:"type:VARCHAR(128);NOT NULL;comment:'模板名称'"`
	Description        string                      `gorm:"type:VARCHAR(512);comment:'模板描述'"`
	Subject            string                      `gorm:"type:VARCHAR(256);NOT NULL;comment:'邮件主题'"`
	BodyHTML           string                      `gorm:"column:body_html;type:TEXT;NOT NULL;comment:'HTML内容'"`
	BodyText           sql.NullString              `gorm:"column:body_text;type:TEXT;comment:'纯文本内容，可选'"`
	AvailableVariables sqlx.JsonColumn[[]string]   `gorm:"type:JSON;comment:'模板可引用的变量名列表，仅文档用途'"`
	IsActive           bool                        `gorm:"NOT NULL;DEFAULT:true;comment:'停用的记录对解析和按触发类型查询不可见'"`
	InheritFromParent  bool                        `gorm:"NOT NULL;DEFAULT:false;comment:'是否继承父作用域模板，global表恒为false'"`
	GroupTemplateID    sql.NullInt64               `gorm:"comment:'创建时快照的商家组模板ID，仅business表使用'"`
	GlobalTemplateID   sql.NullInt64               `gorm:"comment:'创建时快照的全局模板ID'"`
	LogoURL            sql.NullString              `gorm:"column:logo_url;type:VARCHAR(512);comment:'Logo资源URL'"`
	Ctime              int64
	Utime              int64
}

// EmailTemplateDAO 单一作用域的模板表访问接口。
// 三个作用域共用同一实现，仅表名不同，实现内部绝不跨表。
type EmailTemplateDAO interface {
	// GetByID 按主键查询，停用的记录同样可见
	GetByID(ctx context.Context, id int64) (EmailTemplate, error)

	// GetActiveByTrigger 查询指定上下文内该触发类型的生效记录
	GetActiveByTrigger(ctx context.Context, contextID int64, triggerType string) (EmailTemplate, error)

	// List 列出指定上下文的全部记录，含停用记录
	List(ctx context.Context, contextID int64) ([]EmailTemplate, error)

	// Create 插入记录，唯一索引冲突映射为 errs.ErrTemplateDuplicate
	Create(ctx context.Context, template EmailTemplate) (EmailTemplate, error)

	// Update 按主键更新给定列，零行受影响映射为 errs.ErrTemplateNotFound
	Update(ctx context.Context, id int64, fields map[string]any) error

	// Delete 按主键硬删除
	Delete(ctx context.Context, id int64) error
}

type emailTemplateDAO struct {
	db    *gorm.DB
	table string
}

func NewGlobalTemplateDAO(db *gorm.DB) EmailTemplateDAO {
	return &emailTemplateDAO{db: db, table: GlobalTemplateTable}
}

func NewGroupTemplateDAO(db *gorm.DB) EmailTemplateDAO {
	return &emailTemplateDAO{db: db, table: GroupTemplateTable}
}

func NewBusinessTemplateDAO(db *gorm.DB) EmailTemplateDAO {
	return &emailTemplateDAO{db: db, table: BusinessTemplateTable}
}

func (d *emailTemplateDAO) GetByID(ctx context.Context, id int64) (EmailTemplate, error) {
	var template EmailTemplate
	err := d.db.WithContext(ctx).Table(d.table).Where("id = ?", id).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmailTemplate{}, fmt.Errorf("%w: id=%d", errs.ErrTemplateNotFound, id)
		}
		return EmailTemplate{}, wrapStorageErr(err)
	}
	return template, nil
}

func (d *emailTemplateDAO) GetActiveByTrigger(ctx context.Context, contextID int64, triggerType string) (EmailTemplate, error) {
	var template EmailTemplate
	err := d.db.WithContext(ctx).Table(d.table).
		Where("context_id = ? AND trigger_type = ? AND is_active = ?", contextID, triggerType, true).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmailTemplate{}, fmt.Errorf("%w: triggerType=%s, contextID=%d", errs.ErrTemplateNotFound, triggerType, contextID)
		}
		return EmailTemplate{}, wrapStorageErr(err)
	}
	return template, nil
}

func (d *emailTemplateDAO) List(ctx context.Context, contextID int64) ([]EmailTemplate, error) {
	var templates []EmailTemplate
	err := d.db.WithContext(ctx).Table(d.table).
		Where("context_id = ?", contextID).
		Order("trigger_type").
		Find(&templates).Error
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	return templates, nil
}

func (d *emailTemplateDAO) Create(ctx context.Context, template EmailTemplate) (EmailTemplate, error) {
	now := time.Now().UnixMilli()
	template.Ctime, template.Utime = now, now
	err := d.db.WithContext(ctx).Table(d.table).Create(&template).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueConflictErrNo {
			return EmailTemplate{}, fmt.Errorf("%w: triggerType=%s", errs.ErrTemplateDuplicate, template.TriggerType)
		}
		return EmailTemplate{}, wrapStorageErr(err)
	}
	return template, nil
}

func (d *emailTemplateDAO) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	fields["utime"] = time.Now().UnixMilli()
	result := d.db.WithContext(ctx).Table(d.table).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return wrapStorageErr(result.Error)
	}
	// 零行受影响不等于记录不存在：同一毫秒内落下的等值更新，
	// MySQL 也会报告零行，所以要再确认一次存在性
	if result.RowsAffected < 1 {
		if _, err := d.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (d *emailTemplateDAO) Delete(ctx context.Context, id int64) error {
	result := d.db.WithContext(ctx).Table(d.table).Where("id = ?", id).Delete(&EmailTemplate{})
	if result.Error != nil {
		return wrapStorageErr(result.Error)
	}
	if result.RowsAffected < 1 {
		return fmt.Errorf("%w: id=%d", errs.ErrTemplateNotFound, id)
	}
	return nil
}

/*
 * Copyright (c) 2023. YR. All rights reserved
 */

// Package validate
// 模块名: 参数校验
// 功能描述: 基于validator的结构体校验,tag名称为binding,支持中英文错误翻译
// 作者:  yr  2023/4/26 0026 23:00
// 最后更新:  yr  2025/7/18 0018 0:10
package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTrans "github.com/go-playground/validator/v10/translations/en"
	zhTrans "github.com/go-playground/validator/v10/translations/zh"
	"github.com/robfig/cron/v3"
)

const (
	EN = "en"
	ZH = "zh"
)

const tagName = "binding"

// CronParser 与重置调度器使用同一套解析规则: 秒字段可选,支持 @every/@daily 描述符
var CronParser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

var (
	Validator *validator.Validate
	uni       *ut.UniversalTranslator
)

func init() {
	Validator = validator.New()
	Validator.SetTagName(tagName)

	if err := Validator.RegisterValidation("cron", validateCron); err != nil {
		panic(err)
	}

	enLocale := en.New()
	uni = ut.New(enLocale, enLocale, zh.New())

	enT, _ := uni.GetTranslator(EN)
	if err := enTrans.RegisterDefaultTranslations(Validator, enT); err != nil {
		panic(err)
	}
	zhT, _ := uni.GetTranslator(ZH)
	if err := zhTrans.RegisterDefaultTranslations(Validator, zhT); err != nil {
		panic(err)
	}

	registerCronTranslation(enT, "{0} must be a valid cron spec")
	registerCronTranslation(zhT, "{0}必须是合法的cron表达式")
}

func registerCronTranslation(trans ut.Translator, text string) {
	_ = Validator.RegisterTranslation("cron", trans,
		func(t ut.Translator) error {
			return t.Add("cron", text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("cron", fe.Field())
			return msg
		},
	)
}

func validateCron(fl validator.FieldLevel) bool {
	spec := strings.TrimSpace(fl.Field().String())
	if spec == "" {
		return true
	}
	_, err := CronParser.Parse(spec)
	return err == nil
}

// Struct 校验结构体
func Struct(s interface{}) error {
	return Validator.Struct(s)
}

// TransError 把校验错误翻译为指定语言,非校验错误原样返回
func TransError(err error, lang string) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	trans, found := uni.GetTranslator(lang)
	if !found {
		trans, _ = uni.GetTranslator(EN)
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fe.Namespace()+": "+fe.Translate(trans))
	}
	return errors.New(strings.Join(msgs, "; "))
}

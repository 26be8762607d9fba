package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/tr" // トルコ語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	tr_translations "github.com/go-playground/validator/v10/translations/tr"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// 利用者向けのフィールド名 (トルコ語)
var fieldNameTranslations = map[string]string{
	"username":    "Kullanıcı adı",
	"password":    "Şifre",
	"word_id":     "Kelime",
	"is_correct":  "Cevap durumu",
	"user_answer": "Cevap",
	"answer":      "Cevap",
	"level":       "Seviye",
	"score":       "Puan",
	"turkish":     "Türkçe",
	"english":     "İngilizce",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	turkish := tr.New()
	uni := ut.New(turkish, turkish)
	var found bool
	Trans, found = uni.GetTranslator("tr")
	if !found {
		log.Fatal("translator not found")
	}

	if err := tr_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// tag と {0}=フィールド名, {1}=パラメータ のテンプレートを登録する
	override := func(tag, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe), fe.Param())
			return t
		})
	}

	override("required", "{0} zorunludur.")
	override("min", "{0} en az {1} karakter olmalıdır.")
	override("max", "{0} en fazla {1} karakter olmalıdır.")
	override("oneof", "{0} şunlardan biri olmalıdır: {1}.")
}

package validator

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
	zhtrans "github.com/go-playground/validator/v10/translations/zh"
)

// gin binding使用的validator，注册错误信息翻译器

var (
	once     sync.Once
	trans    ut.Translator
	validate *validator.Validate
)

// LazyInitGinValidator 初始化gin的validator和翻译器，必须在gin实例创建之后调用
func LazyInitGinValidator(language string) {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validate = validator.New()
			v = validate
		} else {
			validate = v
		}

		enLoc := en.New()
		zhLoc := zh.New()
		uni := ut.New(enLoc, enLoc, zhLoc)

		switch language {
		case "zh":
			trans, _ = uni.GetTranslator("zh")
			_ = zhtrans.RegisterDefaultTranslations(v, trans)
		default:
			trans, _ = uni.GetTranslator("en")
			_ = entrans.RegisterDefaultTranslations(v, trans)
		}
	})
}

// Struct 校验任意结构体（配置等），返回翻译后的首条错误
func Struct(obj interface{}) error {
	LazyInitGinValidator("")
	if err := validate.Struct(obj); err != nil {
		return err
	}
	return nil
}

// Translate 把validator错误翻译成可读信息
func Translate(err error) string {
	if err == nil {
		return ""
	}
	LazyInitGinValidator("")
	if verrs, ok := err.(validator.ValidationErrors); ok && trans != nil {
		for _, fe := range verrs {
			return fe.Translate(trans)
		}
	}
	return err.Error()
}

package utils

import (
	"github.com/kataras/iris/v12"
)

type PageMeta struct {
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
	Count int `json:"count"`
}

func JSONPage(ctx iris.Context, data interface{}, limit, skip, count int) {
	ctx.JSON(iris.Map{
		"data": data,
		"meta": PageMeta{Limit: limit, Skip: skip, Count: count},
	})
}

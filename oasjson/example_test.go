package oasjson_test

import (
	"fmt"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oasjson"
	"github.com/erraggy/oasmodel/orderedmap"
)

func ExampleMarshal() {
	pet := &model.ObjectSchema{}
	pet.Description = "a pet"
	pet.AddProperty("name", &model.StringSchema{MinLength: model.Ptr(1)})
	pet.AddProperty("owner", model.SchemaRef("Person"))
	pet.AddRequired("name")

	data, err := oasjson.Marshal(pet)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(data))
	// Output:
	// {"description":"a pet","type":"object","required":["name"],"properties":{"name":{"type":"string","minLength":1},"owner":{"$ref":"#/components/schemas/Person"}}}
}

func ExampleMarshalYAML() {
	doc := model.NewDocument()
	doc.Extensions = orderedmap.New[any]()
	doc.Extensions.Set("x-owner", "pets team")

	data, err := oasjson.MarshalYAML(doc)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(data))
	// Output:
	// openapi: 3.0.3
	// x-owner: pets team
}

func ExampleUnmarshal() {
	doc, err := oasjson.Unmarshal([]byte(`{"openapi":"3.0.3","info":{"title":"Pets","version":"1"},"paths":{"/pets":{"get":{"responses":{"200":{"description":"ok"}}}}}}`))
	if err != nil {
		fmt.Println(err)
		return
	}
	item, _ := doc.PathItem("/pets")
	fmt.Println(doc.Info.Title, item.Get.Responses.Keys())
	// Output:
	// Pets [200]
}

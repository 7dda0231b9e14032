package adaptordata_test

import (
	"context"
	"fmt"

	"github.com/pior/adaptordata"
)

func ExampleClient() {
	lister := []byte("GSA Adaptor Data Version 1 [\x00]\x00id-list\x00/docs/a\x00/docs/b")
	source := adaptordata.NewStaticSource("docs", lister, func(id adaptordata.DocID) []byte {
		stream := "GSA Adaptor Data Version 1 [\x00]\x00id=" + string(id) +
			"\x00mime-type=text/plain\x00content\x00Hello from " + string(id)
		return []byte(stream)
	})

	client, err := adaptordata.NewClient(adaptordata.StaticSources(source), adaptordata.Config{
		MaxSessions: 2,
	})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	records, err := client.ListDocIDs(context.Background())
	if err != nil {
		panic(err)
	}
	for _, record := range records {
		fmt.Println(record.DocID)
	}

	doc, err := client.RetrieveDoc(context.Background(), records[0].DocID)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(doc.Content))

	// Output:
	// /docs/a
	// /docs/b
	// Hello from /docs/a
}

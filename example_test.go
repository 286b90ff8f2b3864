package ulog

import (
	"fmt"
)

func ExampleDecode() {
	data := []byte{
		0x55, 0x4C, 0x6F, 0x67, 0x01, 0x12, 0x35, // magic
		0x01,                                           // version
		0x40, 0x42, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, // logging started 1s after boot
	}
	// Mandatory flag-bits record, all flags clear.
	data = append(data, 0x13, 0x00, 'B')
	data = append(data, make([]byte, 19)...)
	// One information record: sys_name = PX4.
	data = append(data, 0x0C, 0x00, 'I', 0x08)
	data = append(data, "sys_name"...)
	data = append(data, "PX4"...)

	log, err := Decode(data)
	if err != nil {
		panic(err)
	}

	fmt.Printf("version %d, uptime %s\n", log.Header.Version, log.Header.Uptime())
	for _, info := range log.Infos() {
		fmt.Printf("%s = %s\n", info.Key, info.Value)
	}
	// Output:
	// version 1, uptime 1s
	// sys_name = PX4
}

func ExampleWithAllowPartial() {
	data := []byte{
		0x55, 0x4C, 0x6F, 0x67, 0x01, 0x12, 0x35,
		0x01,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	data = append(data, 0x13, 0x00, 'B')
	data = append(data, make([]byte, 19)...)
	// A complete sync record, then a data record whose declared size runs
	// past the end of the buffer.
	data = append(data, 0x01, 0x00, 'S', 0x81)
	data = append(data, 0xFF, 0x00, 'D', 0x03, 0x00)

	log, err := Decode(data, WithAllowPartial())
	if err != nil {
		panic(err)
	}

	fmt.Printf("kept %d record(s)\n", len(log.Records))
	fmt.Printf("truncated at offset %d\n", log.Truncation.Offset)
	// Output:
	// kept 1 record(s)
	// truncated at offset 42
}

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/dessertshop/pkg/desserts"
)

func sample() []desserts.Dessert {
	return []desserts.Dessert{
		desserts.New("D001", "Chocolate Cake", "chocolate", 10, 12, true),
		desserts.New("D002", "Lemon Tart", "lemon", 4.5, 3, false),
	}
}

func TestDessertsToTableData(t *testing.T) {
	data := DessertsToTableData(sample(), Options{})
	assert.Equal(t, []string{"ID", "Name", "Flavor", "Price", "Seasonal"}, data.Headers)
	assert.Equal(t, []string{"D001", "Chocolate Cake", "chocolate", "$10.00", "*"}, data.Rows[0])
	assert.Equal(t, []string{"D002", "Lemon Tart", "lemon", "$4.50", ""}, data.Rows[1])
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}

func TestDessertsToTableDataWideIndexed(t *testing.T) {
	data := DessertsToTableData(sample(), Options{Wide: true, Indexed: true})
	assert.Equal(t, "#", data.Headers[0])
	assert.Equal(t, "Stock", data.Headers[len(data.Headers)-1])
	assert.Equal(t, []string{"1", "D002", "Lemon Tart", "lemon", "$4.50", "", "3"}, data.Rows[1])
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}

func TestDessertToTableData(t *testing.T) {
	data := DessertToTableData(sample()[0])
	assert.Equal(t, []string{"Stock", "12 servings"}, data.Rows[4])
	assert.Equal(t, []string{"Seasonal Limited", "Yes"}, data.Rows[5])
}

func TestHistogramToTableData(t *testing.T) {
	data := HistogramToTableData(desserts.PriceHistogram{4, 2, 0})
	assert.Equal(t, []string{"$0-10.00", "4", "##############################"}, data.Rows[0])
	assert.Equal(t, []string{"$10.00-20.00", "2", "###############"}, data.Rows[1])
	assert.Equal(t, []string{"over $20.00", "0", ""}, data.Rows[2])
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", Bar(0, 10, 20))
	assert.Equal(t, "#", Bar(1, 100, 20))
	assert.Equal(t, "##########", Bar(5, 10, 20))
	assert.Equal(t, "", Bar(3, 0, 20))
}

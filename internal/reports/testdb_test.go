package reports

import (
	"fmt"
	"strings"
	"testing"

	"github.com/angelmondragon/salesdash-backend/pkg/db"
	"github.com/angelmondragon/salesdash-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestClient(t *testing.T) (*db.Client, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := conn.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db.NewFromGorm(conn), conn
}

func mustCreate(t *testing.T, conn *gorm.DB, values ...any) {
	t.Helper()
	for _, value := range values {
		if err := conn.Create(value).Error; err != nil {
			t.Fatalf("seed %T: %v", value, err)
		}
	}
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func ptr[T any](v T) *T {
	return &v
}

// seedSales loads two named stores plus store 3 with no dimension row, over
// 2024-01-01..2024-01-03.
func seedSales(t *testing.T, conn *gorm.DB) {
	t.Helper()
	mustCreate(t, conn,
		&models.Store{StoreID: 1, StoreName: "Downtown"},
		&models.Store{StoreID: 2, StoreName: "Airport"},
		&models.Category{CategoryID: 10, CategoryName: "Burgers"},
		&models.Category{CategoryID: 20, CategoryName: "Drinks"},
		&models.Item{ItemID: 100, ItemName: "Cheeseburger", CategoryID: ptr(int64(10))},
		&models.Item{ItemID: 200, ItemName: "Cola", CategoryID: ptr(int64(20))},
	)

	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		mustCreate(t, conn,
			&models.DailySales{StoreID: 1, BusinessDate: day, NetSales: dec("1000.25"), GrossSales: dec("1100.50"), CheckCount: 40, GuestCount: 55},
			&models.DailySales{StoreID: 2, BusinessDate: day, NetSales: dec("500.50"), GrossSales: dec("550"), CheckCount: 20, GuestCount: 30},
			&models.DailySales{StoreID: 3, BusinessDate: day, NetSales: dec("250"), GrossSales: dec("275"), CheckCount: 10, GuestCount: 12},
		)
	}

	mustCreate(t, conn,
		&models.ItemSaleDaily{ItemID: 100, StoreID: 1, BusinessDate: "2024-01-01", QuantitySold: 10, SalesAmount: dec("95")},
		&models.ItemSaleDaily{ItemID: 200, StoreID: 1, BusinessDate: "2024-01-01", QuantitySold: 30, SalesAmount: dec("60")},
		&models.ItemSaleDaily{ItemID: 100, StoreID: 2, BusinessDate: "2024-01-02", QuantitySold: 4, SalesAmount: dec("38")},
		&models.ItemSaleDaily{ItemID: 999, StoreID: 2, BusinessDate: "2024-01-02", QuantitySold: 1, SalesAmount: dec("4.50")},
		&models.ItemSaleDaily{ItemID: 100, StoreID: 1, BusinessDate: "2024-01-05", QuantitySold: 9, SalesAmount: dec("85.50")},
	)

	mustCreate(t, conn,
		&models.ItemSaleHourly{ItemID: 100, StoreID: 1, BusinessDate: "2024-01-01", Hour: 12, QuantitySold: 3, SalesAmount: dec("28.50")},
		&models.ItemSaleHourly{ItemID: 100, StoreID: 2, BusinessDate: "2024-01-01", Hour: 12, QuantitySold: 2, SalesAmount: dec("19")},
		&models.ItemSaleHourly{ItemID: 100, StoreID: 1, BusinessDate: "2024-01-02", Hour: 12, QuantitySold: 1, SalesAmount: dec("9.50")},
		&models.ItemSaleHourly{ItemID: 100, StoreID: 1, BusinessDate: "2024-01-01", Hour: 9, QuantitySold: 1, SalesAmount: dec("9.50")},
		&models.ItemSaleHourly{ItemID: 200, StoreID: 1, BusinessDate: "2024-01-01", Hour: 8, QuantitySold: 5, SalesAmount: dec("10")},
		&models.ItemSaleHourly{ItemID: 100, StoreID: 1, BusinessDate: "2024-01-04", Hour: 7, QuantitySold: 1, SalesAmount: dec("9.50")},
	)

	mustCreate(t, conn,
		&models.TransactionLine{LineID: 1, CheckNumber: 500, ItemID: 100, BusinessDate: "2024-01-01", Price: dec("9.50"), Quantity: 2, CategoryID: ptr(int64(10)), StoreID: 1},
		&models.TransactionLine{LineID: 2, CheckNumber: 500, ItemID: 200, BusinessDate: "2024-01-01", Price: dec("2"), Quantity: 3, CategoryID: ptr(int64(20)), StoreID: 1},
		&models.TransactionLine{LineID: 3, CheckNumber: 501, ItemID: 999, BusinessDate: "2024-01-01", Price: dec("5"), Quantity: 1, CategoryID: ptr(int64(30)), StoreID: 1},
		&models.TransactionLine{LineID: 4, CheckNumber: 600, ItemID: 100, BusinessDate: "2024-01-02", Price: dec("9.50"), Quantity: 1, CategoryID: ptr(int64(10)), StoreID: 2, EmployeeID: ptr(int64(77))},
		&models.TransactionLine{LineID: 5, CheckNumber: 601, ItemID: 200, BusinessDate: "2024-01-02", Price: dec("2"), Quantity: 1, StoreID: 2},
		&models.TransactionLine{LineID: 6, CheckNumber: 700, ItemID: 100, BusinessDate: "2024-01-09", Price: dec("9.50"), Quantity: 1, CategoryID: ptr(int64(10)), StoreID: 1},
	)

	mustCreate(t, conn,
		&models.Void{VoidID: 1, CheckID: 500, ItemID: 100, Price: dec("9.50"), BusinessDate: "2024-01-01", Hour: 12, Minute: 5, StoreID: 1, ManagerID: ptr(int64(9))},
		&models.Void{VoidID: 2, CheckID: 501, ItemID: 999, Price: dec("5"), BusinessDate: "2024-01-01", Hour: 13, Minute: 0, StoreID: 1},
		&models.Void{VoidID: 3, CheckID: 600, ItemID: 200, Price: dec("2"), BusinessDate: "2024-01-02", Hour: 9, Minute: 30, StoreID: 2, VoidReasonID: ptr(int64(4))},
		&models.Void{VoidID: 4, CheckID: 601, ItemID: 200, Price: dec("2"), BusinessDate: "2024-01-02", Hour: 9, Minute: 30, StoreID: 2},
	)
}

func window(start, end string, storeID *int64) Params {
	s, _ := ParseDate(start)
	e, _ := ParseDate(end)
	return Params{Start: s, End: e, StoreID: storeID}
}

package store

import (
	"autoservice-backend/internal/models"
)

var catalogParts = []models.Part{
	{Name: "Масло моторное 5W-40", Category: "oil", Brand: "toyota", Price: 2500,
		Description: "Синтетическое масло 4л", Image: "https://avatars.mds.yandex.net/i?id=fdd825d05eb78862c718eab167b693570bcab7c4-5468635-images-thumbs&n=13", InStock: true},
	{Name: "Масляный фильтр", Category: "oil", Brand: "toyota", Price: 500,
		Description: "Оригинальный фильтр", Image: "https://avatars.mds.yandex.net/get-mpic/5068955/img_id6275696105675606823.jpeg/orig", InStock: true},
	{Name: "Воздушный фильтр", Category: "oil", Brand: "nissan", Price: 800,
		Description: "Фильтр двигателя", Image: "https://emex.ru/Find2/Find/GetDetailImage?detailKey=7avt6muxjgrb69uxtafn6jkxtdrv69wx8aywhwf3jdvr2uq&detailImageId=2869336", InStock: true},
	{Name: "Тормозные колодки передние", Category: "brake", Brand: "hyundai", Price: 3200,
		Description: "Комплект на 2 колеса", Image: "https://avatars.mds.yandex.net/get-mpic/4696638/2a00000194639246fcf144ec35b742fbc400/orig", InStock: true},
	{Name: "Тормозные диски", Category: "brake", Brand: "kia", Price: 4500,
		Description: "Вентилируемые", Image: "https://main-cdn.sbermegamarket.ru/big1/hlr-system/926/894/299/361/837/100039492247b0.jpg", InStock: true},
	{Name: "Тормозная жидкость DOT-4", Category: "brake", Brand: "all", Price: 600,
		Description: "1 литр", Image: "https://avatars.mds.yandex.net/get-marketpic/7741417/pic2ebd8d3da72c61bd7e64e55ddd30ab61/orig", InStock: true},
	{Name: "Ремень ГРМ", Category: "engine", Brand: "toyota", Price: 3800,
		Description: "Комплект с роликами", Image: "https://avatars.mds.yandex.net/get-mpic/4055794/img_id651118449483376700.jpeg/orig", InStock: true},
	{Name: "Свечи зажигания", Category: "engine", Brand: "bmw", Price: 2200,
		Description: "Комплект 4 шт", Image: "https://basket-27.wbbasket.ru/vol4975/part497501/497501850/images/big/1.webp", InStock: true},
	{Name: "Помпа водяная", Category: "engine", Brand: "renault", Price: 3500,
		Description: "Насос охлаждения", Image: "https://avatars.mds.yandex.net/get-mpic/11472827/2a0000018f39a6c8e2131b9bdde678a32f9a/orig", InStock: true},
	{Name: "Амортизатор передний", Category: "suspension", Brand: "toyota", Price: 5500,
		Description: "Масляный", Image: "https://avatars.mds.yandex.net/get-mpic/15584819/2a0000019a540373cc2e2efa8eb7871b57e2/orig", InStock: true},
	{Name: "Шаровая опора", Category: "suspension", Brand: "nissan", Price: 1500,
		Description: "Нижняя", Image: "https://ir.ozone.ru/s3/multimedia-1-p/7809046621.jpg", InStock: true},
	{Name: "Сайлентблок", Category: "suspension", Brand: "hyundai", Price: 900,
		Description: "Переднего рычага", Image: "https://avatars.mds.yandex.net/get-mpic/11482776/2a0000018bf7cf49ed7ee0937f972180ea32/orig", InStock: true},
	{Name: "Аккумулятор 60Ah", Category: "electrics", Brand: "all", Price: 6500,
		Description: "Необслуживаемый", Image: "https://avatars.mds.yandex.net/get-mpic/12301852/2a0000018c58035fef0184cbe84e7fed12d7/orig", InStock: true},
	{Name: "Генератор", Category: "electrics", Brand: "kia", Price: 8500,
		Description: "Новый", Image: "https://avatars.mds.yandex.net/get-mpic/11312687/2a0000018b18fd9f4ea3621469692d6c539b/orig", InStock: true},
	{Name: "Стартер", Category: "electrics", Brand: "toyota", Price: 7800,
		Description: "Оригинал", Image: "https://ir.ozone.ru/s3/multimedia-m/c600/6261474970.jpg", InStock: true},
	{Name: "Фара левая", Category: "bodywork", Brand: "toyota", Price: 12000,
		Description: "Светодиодная", Image: "https://avatars.mds.yandex.net/get-mpic/4303817/2a000001963eee0882b90197e4a9bf9b475e/orig", InStock: true},
	{Name: "Бампер передний", Category: "bodywork", Brand: "nissan", Price: 15000,
		Description: "В цвет", Image: "https://basket-17.wbbasket.ru/vol2834/part283493/283493864/images/big/1.webp", InStock: true},
	{Name: "Зеркало боковое", Category: "bodywork", Brand: "hyundai", Price: 4500,
		Description: "С подогревом", Image: "https://avatars.mds.yandex.net/get-mpic/4250892/img_id8865515304351179951.jpeg/orig", InStock: true},
}

// SeedParts fills the catalog on first run. The table is left untouched
// when it already has rows.
func (s *Store) SeedParts() error {
	var count int64
	if err := s.db.Model(&models.Part{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range catalogParts {
		part := catalogParts[i]
		part.ID = 0
		if err := s.db.Create(&part).Error; err != nil {
			return err
		}
	}
	return nil
}
